// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the application
// including User, Program, Lecture, Post, Review and audit event structures.
package model

// User roles. A role is a subscription tier and decides which lecture
// levels are visible through the access policy.
const (
	RoleFree   = "free"
	RoleMember = "member"
	RoleMaster = "master"
	// RoleBoth satisfies every check RoleMember or RoleMaster satisfies.
	RoleBoth = "both"
)

// ValidRole reports whether s is one of the known user roles.
func ValidRole(s string) bool {
	switch s {
	case RoleFree, RoleMember, RoleMaster, RoleBoth:
		return true
	}
	return false
}

// User represents a platform account.
type User struct {
	ID           int64  `json:"Id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	MasterCohort int    `json:"master_cohort,omitempty"`
	IsAdmin      bool   `json:"is_admin"`
}

// UserPatch is a partial update for a User. Nil fields are left untouched.
type UserPatch struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Role         *string `json:"role,omitempty" validate:"omitempty,role"`
	MasterCohort *int    `json:"master_cohort,omitempty" validate:"omitempty,min=1"`
	IsAdmin      *bool   `json:"is_admin,omitempty"`
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.MasterCohort != nil {
		u.MasterCohort = *p.MasterCohort
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
	}
}
