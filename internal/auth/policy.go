// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth provides the role-based access policy and the mock session
// manager. The policy is pure: deterministic in (role, level), no I/O.
package auth

import "github.com/olegiv/academy-go/internal/model"

// HasRole reports whether the user holds the given role. A nil user holds
// no role. RoleBoth satisfies every role check.
func HasRole(u *model.User, role string) bool {
	if u == nil {
		return false
	}
	if u.Role == model.RoleBoth {
		return true
	}
	return u.Role == role
}

// CanAccessLevel reports whether the user may access content tagged with
// the given lecture level.
//
//	level          anonymous/free  member  master  both
//	(unset/other)  allow           allow   allow   allow
//	membership     deny            allow   allow   allow
//	master         deny            deny    allow   allow
//	master_common  deny            deny    allow   allow
//
// Unrecognized levels fall through to the default row and stay publicly
// visible; writes of such levels are rejected elsewhere, but seeded data
// may still carry them.
func CanAccessLevel(u *model.User, level string) bool {
	switch level {
	case model.LevelMembership:
		return HasRole(u, model.RoleMember) || HasRole(u, model.RoleMaster)
	case model.LevelMaster, model.LevelMasterCommon:
		return HasRole(u, model.RoleMaster)
	default:
		return true
	}
}
