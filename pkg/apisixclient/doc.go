// Package apisixclient creates configured APISIX API clients.
//
// Use NewAdmin / NewAdminWithKey for the Admin API and NewControl /
// NewControlWithKey for the Control API. Both accept an *apisix.Config; the
// returned facades are safe for concurrent use and share one connection pool
// per client.
//
//	admin, err := apisixclient.NewAdminWithKey(
//		"http://127.0.0.1:9180/apisix/admin",
//		"edd1c9f034335f136f87ad84b625c8f1",
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	route, err := admin.Routes().CreateWithID(ctx, "1", apisix.Object{
//		"uri":         "/hello",
//		"upstream_id": "u1",
//	})
package apisixclient
