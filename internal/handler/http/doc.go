// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the wildlife service.
//
// It exposes route wiring, request handlers, and middleware used by the API.
// Cross-cutting concerns such as CORS, request tracing, access logging,
// bearer-token authentication, role gating and response compression are
// handled in this package before requests are delegated to the service layer.
package http
