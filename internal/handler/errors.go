// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when there is no HTTP
// address or no blob store to serve. The blob server cannot start without
// either.
var errNoHandlersAreCreated = errors.New("no handlers are created")
