/*
Package authsdk provides the wire types and a client for the session token
authority.

# Overview

The server and the client share the request, response and error types in
this package, so a field renamed on one side is renamed on the other.

	client := authsdk.NewClient("https://auth.example.com")

	pair, err := client.Authorize(ctx, "admin@example.com", "s3cret")
	if err != nil {
		return err
	}

	me, err := client.GetUser(ctx, pair.AccessToken, authsdk.Me)

Access tokens travel in the Access-Token header without a scheme prefix.
The client does not refresh on its own; call Refresh with the refresh token
and keep the pair it returns. The previous pair is revoked by the server.

# Error Handling

Every failed call returns an *APIError carrying the HTTP status code and the
server's {status, description} body. The predefined values can be matched
with errors.Is, which compares status and HTTP code only:

	_, err := client.Refresh(ctx, old)
	if errors.Is(err, authsdk.ErrTokenRevoked) {
		// the refresh token was already rotated
	}
*/
package authsdk
