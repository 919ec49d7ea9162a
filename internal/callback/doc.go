// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package callback implements the loopback HTTP listener that receives the
// OAuth redirect from the system browser.
//
// The listener serves GET /login and GET /auth/callback. The query of each
// redirect carrying a token or user_id is forwarded on the channel returned
// by [Listener.Results]; the terminal UI treats it as a new inbound
// navigation to the login page. The browser receives a short HTML page.
package callback
