// Package client provides a convenience HTTP client for Akamai OPEN APIs.
//
// It wraps net/http with EdgeGrid request signing (see the auth package)
// and a small request builder for query parameters, headers, and JSON
// bodies:
//
//	c, err := client.NewFromEdgerc("~/.edgerc", "default")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var sources []ReportSource
//	err = c.Get("/billing-usage/v1/reportSources").JSON(ctx, &sources)
//
// Requests are built relative to the credential host. Every request is
// signed immediately before it is sent; a request that fails to sign is
// never sent.
package client
