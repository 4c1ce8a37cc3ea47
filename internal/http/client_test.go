package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	internalhttp "github.com/s1nju/apisix-client/internal/http"

	"github.com/s1nju/apisix-client/internal/auth"
	"github.com/s1nju/apisix-client/pkg/apisix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/apisix/admin/routes", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total":0,"list":[]}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL+"/apisix/admin", auth.NewStaticKeyProvider("secret"))

	resp, err := client.Get(context.Background(), "/routes", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"total":0,"list":[]}`, string(resp.Body))
}

func TestClient_TrailingSlashJoin(t *testing.T) {
	t.Parallel()

	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// Both base and path carry a slash; the join must produce exactly one.
	client := internalhttp.NewClient(server.URL+"/apisix/admin/", nil)

	_, err := client.Get(context.Background(), "/routes/r1", nil)
	require.NoError(t, err)
	assert.Equal(t, "/apisix/admin/routes/r1", gotPath)
}

func TestClient_PostBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"key":"/apisix/routes/1","value":{"uri":"/hello"}}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, auth.NewStaticKeyProvider("secret"))

	resp, err := client.Post(context.Background(), "/routes", map[string]interface{}{"uri": "/hello"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestClient_NoContentTypeWithoutBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/routes", nil)
	require.NoError(t, err)
}

func TestClient_QueryParameters(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "60", r.URL.Query().Get("ttl"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	query := url.Values{}
	query.Set("ttl", "60")

	_, err := client.Get(context.Background(), "/routes/r1", query)
	require.NoError(t, err)
}

func TestClient_EmptyBodyIsNil(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Delete(context.Background(), "/routes/r1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Nil(t, resp.Body)
}

func TestClient_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Key not found"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, auth.NewStaticKeyProvider("secret"))

	resp, err := client.Get(context.Background(), "/routes/missing", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	require.True(t, apisix.IsNotFound(err))

	var notFound *apisix.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
}

func TestClient_NotFoundMalformedBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/routes/missing", nil)
	require.Error(t, err)

	assert.True(t, apisix.IsNotFound(err))
}

func TestClient_ValidationError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_msg":"invalid configuration: missing uri","code":"10001"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, auth.NewStaticKeyProvider("secret"))

	_, err := client.Put(context.Background(), "/routes/r1", map[string]interface{}{})
	require.Error(t, err)

	require.True(t, apisix.IsValidation(err))

	var validation *apisix.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "invalid configuration: missing uri", validation.Message)
	assert.Equal(t, "10001", validation.Code)
}

func TestClient_AuthenticationError(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"message":"failed to check token"}`))
		}))

		client := internalhttp.NewClient(server.URL, auth.NewStaticKeyProvider("wrong"))

		_, err := client.Get(context.Background(), "/routes", nil)
		require.Error(t, err)

		require.True(t, apisix.IsAuthentication(err))

		var authErr *apisix.AuthenticationError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, status, authErr.StatusCode)

		server.Close()
	}
}

func TestClient_ServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error_msg":"etcd cluster unavailable"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/routes", nil)
	require.Error(t, err)

	require.True(t, apisix.IsServer(err))

	var serverErr *apisix.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "etcd cluster unavailable", serverErr.Message)
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	client := internalhttp.NewClient("http://127.0.0.1:1", nil,
		internalhttp.WithTimeout(500*time.Millisecond))

	resp, err := client.Get(context.Background(), "/routes", nil)
	require.Error(t, err)
	assert.Nil(t, resp)

	require.True(t, apisix.IsTransport(err))

	var transportErr *apisix.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Error(t, transportErr.Err)
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithTimeout(100*time.Millisecond))

	_, err := client.Get(context.Background(), "/routes", nil)
	require.Error(t, err)

	assert.True(t, apisix.IsTransport(err))
}

func TestClient_NoRetriesByDefault(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		calls int
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/routes", nil)
	require.Error(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestClient_RetriesWhenConfigured(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		calls int
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithRetryConfig(3, 10*time.Millisecond, 20*time.Millisecond))

	resp, err := client.Get(context.Background(), "/routes", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, calls)
}

func TestClient_PerRequestHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-1", r.Header.Get("X-Request-Id"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	_, err := client.Do(context.Background(), &internalhttp.Request{
		Method:  http.MethodGet,
		Path:    "/routes",
		Headers: map[string]string{"X-Request-Id": "trace-1"},
	})
	require.NoError(t, err)
}

func TestClient_UserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "apisixctl/1.0", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithUserAgent("apisixctl/1.0"))

	_, err := client.Get(context.Background(), "/routes", nil)
	require.NoError(t, err)
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "injected", r.Header.Get("X-Custom"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	chain := apisix.NewInterceptorChain()
	chain.AddRequestInterceptor(apisix.HeaderInterceptor(map[string]string{"X-Custom": "injected"}))

	var (
		mu        sync.Mutex
		responses int
	)

	chain.AddResponseInterceptor(func(_ context.Context, _ *apisix.Request, _ *apisix.Response) error {
		mu.Lock()
		responses++
		mu.Unlock()

		return nil
	})

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/routes", nil)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, responses)
}

func TestClient_ConcurrentRequests(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"key":"` + r.URL.Path + `"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, auth.NewStaticKeyProvider("secret"))

	var wg sync.WaitGroup

	// Distinct ids per call; each response must carry its own request's id.
	for i := 0; i < 20; i++ {
		wg.Add(1)

		go func(id int) {
			defer wg.Done()

			path := fmt.Sprintf("/routes/r%d", id)

			resp, err := client.Get(context.Background(), path, nil)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"key":"`+path+`"}`, string(resp.Body))
		}(i)
	}

	wg.Wait()
}

func TestClient_KeyProviderError(t *testing.T) {
	t.Parallel()

	client := internalhttp.NewClient("http://127.0.0.1:1", auth.NewEnvKeyProvider("APISIX_TEST_KEY_UNSET"))

	_, err := client.Get(context.Background(), "/routes", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrKeyNotSet)
}
