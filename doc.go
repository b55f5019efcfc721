// Package shopdesk provides a Go client SDK for the ShopDesk multi-tenant
// inventory and point-of-sale API.
//
// The client owns the full session lifecycle: it persists the access and
// refresh tokens, transparently refreshes an expired access token once per
// failed call, scopes superadmin requests to a selected shop, caches GET
// responses for a short window, and classifies every failure into a typed
// error.
//
// Basic usage:
//
//	client, err := shopdesk.New("https://api.example.com",
//	    shopdesk.WithSessionFile(".shopdesk/session.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := client.Login(ctx, "admin", "secret"); err != nil {
//	    log.Fatal(err)
//	}
//
//	items, err := client.ListItems(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("items:", len(items))
package shopdesk
