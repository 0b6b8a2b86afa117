// Copyright (c) 2026 Fornello. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Client-Facing Messages

// These texts are part of the external contract and must not be reworded.
const (
	// MessageMissingFields is the 400 body for an incomplete registration.
	MessageMissingFields = "name, email, and password are required"

	// MessageLogoutSuccessful is the 200 body for a completed logout.
	MessageLogoutSuccessful = "logout successful"
)
