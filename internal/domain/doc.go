// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/item, domain/user).
// This root package holds sentinel errors and validation types shared across
// all entities.
package domain
