package apisix

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/s1nju/apisix-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedBatchKind     = errors.New("resource kind not supported in batch operations")
	ErrUnsupportedOperationType = errors.New("unsupported operation type")
	ErrOperationRequiresID      = errors.New("operation requires a resource identifier")
	ErrOperationRequiresPayload = errors.New("operation requires a payload")
)

// OperationType names one of the uniform CRUD verbs a batch entry can carry.
type OperationType string

const (
	// OpCreate creates an object; a set ResourceID selects create-or-replace.
	OpCreate OperationType = "create"

	// OpUpdate partially updates an object; SubPath scopes the merge.
	OpUpdate OperationType = "update"

	// OpDelete removes an object.
	OpDelete OperationType = "delete"

	// OpGet fetches an object.
	OpGet OperationType = "get"
)

// BatchOperation represents a single operation in a batch. Because payloads
// are opaque Objects, one shape covers every supported resource kind.
type BatchOperation struct {
	// ID correlates the operation with its result; it is caller-chosen and
	// never sent to the gateway.
	ID string

	// Kind selects the resource collection.
	Kind ResourceKind

	// Type selects the CRUD verb.
	Type OperationType

	// ResourceID is the gateway identifier. Required for update, delete and
	// get; optional for create (present means create-or-replace).
	ResourceID string

	// SubPath scopes an update to a single attribute path.
	SubPath string

	// Payload is the resource configuration for create and update.
	Payload Object

	// Callback, when set, is invoked with the result as soon as the
	// operation completes.
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// batchOps is the subset of the resource surface the executor drives. The
// full-CRUD sub-clients (routes, services, upstreams) satisfy it directly.
type batchOps interface {
	Get(ctx context.Context, id string) (*Resource, error)
	Create(ctx context.Context, config Object, opts ...CallOption) (*Resource, error)
	CreateWithID(ctx context.Context, id string, config Object, opts ...CallOption) (*Resource, error)
	Update(ctx context.Context, id string, config Object, opts ...CallOption) (*Resource, error)
	UpdateWithPath(ctx context.Context, id, subPath string, config Object, opts ...CallOption) (*Resource, error)
	Delete(ctx context.Context, id string) (*DeleteResponse, error)
}

// BatchExecutor runs many admin operations concurrently against one client.
// Each operation remains an independent at-most-once call; the executor adds
// bounded concurrency and result collection, nothing transactional.
type BatchExecutor struct {
	admin       AdminClient
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(admin AdminClient, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrencyLimit
	}

	return &BatchExecutor{
		admin:       admin,
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the per-operation timeout.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations. Results are positionally aligned with
// the input slice; a failed operation records its error and does not stop
// the others.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results, nil
}

// executeOperation executes a single operation.
func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	ops, err := b.opsFor(operation.Kind)
	if err != nil {
		result.Error = err

		return result
	}

	data, err := runOperation(ctx, ops, operation)
	result.Success = err == nil
	result.Data = data
	result.Error = err

	return result
}

// opsFor maps a resource kind to its sub-client. Kinds whose operation
// surface diverges from the uniform CRUD shape (consumers, ssl, plugins,
// secrets) are not batchable.
func (b *BatchExecutor) opsFor(kind ResourceKind) (batchOps, error) {
	switch kind {
	case KindRoute:
		return b.admin.Routes(), nil
	case KindService:
		return b.admin.Services(), nil
	case KindUpstream:
		return b.admin.Upstreams(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBatchKind, kind)
	}
}

func runOperation(ctx context.Context, ops batchOps, operation BatchOperation) (interface{}, error) {
	switch operation.Type {
	case OpCreate:
		if operation.Payload == nil {
			return nil, fmt.Errorf("%w: create %s", ErrOperationRequiresPayload, operation.Kind)
		}

		if operation.ResourceID != "" {
			return ops.CreateWithID(ctx, operation.ResourceID, operation.Payload)
		}

		return ops.Create(ctx, operation.Payload)

	case OpUpdate:
		if operation.ResourceID == "" {
			return nil, fmt.Errorf("%w: update %s", ErrOperationRequiresID, operation.Kind)
		}

		if operation.Payload == nil {
			return nil, fmt.Errorf("%w: update %s", ErrOperationRequiresPayload, operation.Kind)
		}

		if operation.SubPath != "" {
			return ops.UpdateWithPath(ctx, operation.ResourceID, operation.SubPath, operation.Payload)
		}

		return ops.Update(ctx, operation.ResourceID, operation.Payload)

	case OpDelete:
		if operation.ResourceID == "" {
			return nil, fmt.Errorf("%w: delete %s", ErrOperationRequiresID, operation.Kind)
		}

		return ops.Delete(ctx, operation.ResourceID)

	case OpGet:
		if operation.ResourceID == "" {
			return nil, fmt.Errorf("%w: get %s", ErrOperationRequiresID, operation.Kind)
		}

		return ops.Get(ctx, operation.ResourceID)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type)
	}
}

// BatchBuilder helps build batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		operations: make([]BatchOperation, 0),
	}
}

// AddCreate adds a create operation with a server-assigned identifier.
func (b *BatchBuilder) AddCreate(id string, kind ResourceKind, payload Object) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:      id,
		Kind:    kind,
		Type:    OpCreate,
		Payload: payload,
	})

	return b
}

// AddCreateWithID adds a create-or-replace operation.
func (b *BatchBuilder) AddCreateWithID(id string, kind ResourceKind, resourceID string, payload Object) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:         id,
		Kind:       kind,
		Type:       OpCreate,
		ResourceID: resourceID,
		Payload:    payload,
	})

	return b
}

// AddUpdate adds a partial update operation.
func (b *BatchBuilder) AddUpdate(id string, kind ResourceKind, resourceID string, payload Object) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:         id,
		Kind:       kind,
		Type:       OpUpdate,
		ResourceID: resourceID,
		Payload:    payload,
	})

	return b
}

// AddDelete adds a delete operation.
func (b *BatchBuilder) AddDelete(id string, kind ResourceKind, resourceID string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:         id,
		Kind:       kind,
		Type:       OpDelete,
		ResourceID: resourceID,
	})

	return b
}

// AddGet adds a get operation.
func (b *BatchBuilder) AddGet(id string, kind ResourceKind, resourceID string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:         id,
		Kind:       kind,
		Type:       OpGet,
		ResourceID: resourceID,
	})

	return b
}

// AddOperation adds a custom operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the built operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}
