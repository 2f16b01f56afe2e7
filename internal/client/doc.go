// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements wlctl, the operator command line for
// whitelistd.
//
// Each subcommand parses its own flags, calls the admin API through
// [adapter.ServerAdapter] and prints the result rendered by package tui.
// Prompts (login, confirmations, password entry) go through [Prompter] so
// the commands can be driven without a terminal.
package client
