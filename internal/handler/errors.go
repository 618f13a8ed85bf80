// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured. This is treated as a fatal misconfiguration and causes
	// the application to fail at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoSessionStore is returned when GitHub login is configured but no
	// session store was supplied for the login sessions.
	errNoSessionStore = errors.New("github login requires a session store")
)
