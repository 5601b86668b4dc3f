// Package purge provides a small facade for invalidating and deleting cached
// content by tag or by source image.
//
// The actual purge is delegated to a Provider. Which Provider handles a call
// is decided per call: by default it is read from the context.Context passed
// to the operation, and when none is configured the operation succeeds
// without doing anything. This lets application code call the purge API
// unconditionally, whether or not a purge backend is configured for the
// environment it runs in.
//
// # Architecture
//
//  1. Provider interface with four operations
//  2. Client, which resolves a Provider per call and forwards to it
//  3. Package-level functions backed by a Client that reads the Provider from ctx
//  4. Provider implementations under providers/ (REST API, vercel CLI, Fastly edge)
//  5. An instrumentation decorator under instrument/
//
// # Invalidate vs. delete
//
// Invalidate operations mark data as stale. The stale data is still served
// on the next access while a revalidation runs in the background.
//
// Delete operations remove the data once the revalidation deadline given in
// DeleteOptions elapses. The deadline defaults to zero, which deletes the
// data immediately. The default is applied by the Provider: a nil
// *DeleteOptions is forwarded as nil.
//
// # Error handling
//
// Errors returned by a Provider are returned to the caller unchanged. The
// facade performs no retries, no timeouts and no wrapping. A missing
// Provider is not an error.
//
// # Usage
//
//	provider, err := api.New(
//	    api.WithToken(os.Getenv("PURGE_API_TOKEN")),
//	    api.WithProjectID("prj_123"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := purge.NewContext(context.Background(), provider)
//
//	// Mark the "products" tag as stale.
//	if err := purge.InvalidateByTag(ctx, []string{"products"}); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Delete an image after serving stale data for up to 30 seconds.
//	err = purge.DangerouslyDeleteBySrcImage(ctx, []string{"/avatars/1.png"},
//	    &purge.DeleteOptions{RevalidationDeadlineSeconds: 30})
//
// Without a Provider in ctx the same calls return nil.
package purge
