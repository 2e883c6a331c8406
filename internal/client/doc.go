// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the memories client runtime.
//
// It wires local storage, the REST gateways, reachability, the use-case
// services, background workers and the queue monitor into a single process
// lifecycle.
package client
