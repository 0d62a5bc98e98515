// Package travelbuddy provides the core types and logic for managing a
// personal collection of travel plans. It is designed to be local-first:
// every collection lives in a per-device key-value store and the device's
// copy is authoritative.
//
// The core functionalities include:
//   - Trip Collection: saving, listing, searching and deleting AI-generated
//     travel guides, newest first.
//   - Budget Ledger: a trip budget with categorized expenses and derived
//     figures such as total spent, remaining and progress against the budget.
//   - User Registry: a per-device directory of everyone who signed in on
//     this device, upserted on every login and keyed by email.
//   - Currency Conversion: exact conversion between currencies using a
//     static rate table.
//   - Preferences: the handful of single-value settings (role, theme,
//     accent color) remembered between sessions.
//
// This package serves as the foundational logic for the `tvb` command-line
// tool. External collaborators (the authentication provider and the travel
// guide generator) are consumed through narrow interfaces and never leak
// untyped values into this package.
package travelbuddy
