// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the settings of the quote server and the quote client.
//
// Values come from environment variables, then command-line flags, then an
// optional JSON file named by CONFIG or -c. A later source overrides the
// non-zero fields of an earlier one. [GetServerConfig] and [GetClientConfig]
// map the merged result onto the fields each binary needs, fill defaults and
// validate it.
package config
