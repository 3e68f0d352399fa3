// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when there is no HTTP
// handler or listen address to serve the configuration view on.
var errNoServersAreCreated = errors.New("no servers are created: HTTP view is not configured")
