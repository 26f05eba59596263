package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/olegiv/academy-go/internal/model"
)

func strPtr(s string) *string { return &s }

func TestStructLectureDraft(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		draft   model.LectureDraft
		wantErr string // substring of the validation message, "" = valid
	}{
		{
			name: "valid draft",
			draft: model.LectureDraft{
				ProgramSlug: "web-development",
				Title:       "Intro to HTML",
				Level:       model.LevelFree,
				SortOrder:   1,
			},
		},
		{
			name: "missing title",
			draft: model.LectureDraft{
				ProgramSlug: "web-development",
				Level:       model.LevelFree,
			},
			wantErr: "Title is required",
		},
		{
			name: "unknown level rejected at write boundary",
			draft: model.LectureDraft{
				ProgramSlug: "web-development",
				Title:       "Intro",
				Level:       "platinum",
			},
			wantErr: "Level must be one of",
		},
		{
			name: "bad program slug",
			draft: model.LectureDraft{
				ProgramSlug: "Web Development",
				Title:       "Intro",
				Level:       model.LevelFree,
			},
			wantErr: "ProgramSlug must be a valid slug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(v, tt.draft)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestStructReviewDraftLength(t *testing.T) {
	v := New()

	long := strings.Repeat("x", model.MaxReviewTextLen+1)
	err := Struct(v, model.ReviewDraft{Text: long, AuthorID: "user_1"})
	if err == nil {
		t.Fatal("expected error for over-long review text")
	}

	ok := strings.Repeat("x", model.MaxReviewTextLen)
	if err := Struct(v, model.ReviewDraft{Text: ok, AuthorID: "user_1"}); err != nil {
		t.Fatalf("500-char review should be valid, got %v", err)
	}
}

func TestStructUserPatch(t *testing.T) {
	v := New()

	if err := Struct(v, model.UserPatch{Role: strPtr("vip")}); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if err := Struct(v, model.UserPatch{Role: strPtr(model.RoleBoth)}); err != nil {
		t.Fatalf("role %q should be valid, got %v", model.RoleBoth, err)
	}
	// Empty patch is a no-op, not an error.
	if err := Struct(v, model.UserPatch{}); err != nil {
		t.Fatalf("empty patch should validate, got %v", err)
	}
}
