// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the notes command line runtime.
//
// It binds the encryption key to the invocation, dispatches one command
// (create, read, update, migrate or watch) to the content service and
// prints the result as JSON.
package client
