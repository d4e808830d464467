package model

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestRoleValid(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want bool
	}{
		{"reader", RoleReader, true},
		{"author", RoleAuthor, true},
		{"editor", RoleEditor, true},
		{"admin", RoleAdmin, true},
		{"empty", Role(""), false},
		{"unknown", Role("superuser"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.Valid(); got != tt.want {
				t.Errorf("Role(%q).Valid() = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestPostStatusValid(t *testing.T) {
	tests := []struct {
		name   string
		status PostStatus
		want   bool
	}{
		{"draft", PostDraft, true},
		{"published", PostPublished, true},
		{"archived", PostArchived, true},
		{"deleted", PostDeleted, true},
		{"empty", PostStatus(""), false},
		{"unknown", PostStatus("pending"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.want {
				t.Errorf("PostStatus(%q).Valid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestVisibilityValid(t *testing.T) {
	tests := []struct {
		name string
		vis  Visibility
		want bool
	}{
		{"public", VisibilityPublic, true},
		{"unlisted", VisibilityUnlisted, true},
		{"private", VisibilityPrivate, true},
		{"unknown", Visibility("hidden"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vis.Valid(); got != tt.want {
				t.Errorf("Visibility(%q).Valid() = %v, want %v", tt.vis, got, tt.want)
			}
		})
	}
}

func TestCommentStatusValid(t *testing.T) {
	tests := []struct {
		name   string
		status CommentStatus
		want   bool
	}{
		{"pending", CommentPending, true},
		{"approved", CommentApproved, true},
		{"spam", CommentSpam, true},
		{"deleted", CommentDeleted, true},
		{"unknown", CommentStatus("flagged"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.want {
				t.Errorf("CommentStatus(%q).Valid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestVariantNameValid(t *testing.T) {
	tests := []struct {
		name    string
		variant VariantName
		want    bool
	}{
		{"thumb", VariantThumb, true},
		{"small", VariantSmall, true},
		{"medium", VariantMedium, true},
		{"large", VariantLarge, true},
		{"unknown", VariantName("original"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.variant.Valid(); got != tt.want {
				t.Errorf("VariantName(%q).Valid() = %v, want %v", tt.variant, got, tt.want)
			}
		})
	}
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != IDLen {
			t.Fatalf("NewID() length = %d, want %d", len(id), IDLen)
		}
		if seen[id] {
			t.Fatalf("NewID() returned duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestBeforeCreateAssignsIDs(t *testing.T) {
	user := &User{}
	if err := user.BeforeCreate(nil); err != nil {
		t.Fatalf("User.BeforeCreate: %v", err)
	}
	if len(user.ID) != IDLen {
		t.Errorf("User ID length = %d, want %d", len(user.ID), IDLen)
	}

	profile := &Profile{}
	if err := profile.BeforeCreate(nil); err != nil {
		t.Fatalf("Profile.BeforeCreate: %v", err)
	}
	if len(profile.ID) != IDLen {
		t.Errorf("Profile ID length = %d, want %d", len(profile.ID), IDLen)
	}

	post := &Post{}
	if err := post.BeforeCreate(nil); err != nil {
		t.Fatalf("Post.BeforeCreate: %v", err)
	}
	if len(post.ID) != IDLen {
		t.Errorf("Post ID length = %d, want %d", len(post.ID), IDLen)
	}

	comment := &Comment{}
	if err := comment.BeforeCreate(nil); err != nil {
		t.Fatalf("Comment.BeforeCreate: %v", err)
	}
	if len(comment.ID) != IDLen {
		t.Errorf("Comment ID length = %d, want %d", len(comment.ID), IDLen)
	}

	media := &Media{}
	if err := media.BeforeCreate(nil); err != nil {
		t.Fatalf("Media.BeforeCreate: %v", err)
	}
	if len(media.ID) != IDLen {
		t.Errorf("Media ID length = %d, want %d", len(media.ID), IDLen)
	}
	if !strings.HasPrefix(media.StorageKey, "uploads/") {
		t.Errorf("Media StorageKey = %q, want uploads/ prefix", media.StorageKey)
	}
}

func TestBeforeCreateKeepsCallerID(t *testing.T) {
	const fixed = "01HYAFIXEDULIDFORTESTING00"

	user := &User{ID: fixed}
	if err := user.BeforeCreate(nil); err != nil {
		t.Fatalf("User.BeforeCreate: %v", err)
	}
	if user.ID != fixed {
		t.Errorf("User.BeforeCreate overwrote ID: got %q, want %q", user.ID, fixed)
	}
}

func TestSessionBeforeCreateGeneratesToken(t *testing.T) {
	s := &Session{UserID: NewID()}
	if err := s.BeforeCreate(nil); err != nil {
		t.Fatalf("Session.BeforeCreate: %v", err)
	}
	if s.Token == "" {
		t.Fatal("Session.BeforeCreate left Token empty")
	}

	withToken := &Session{UserID: NewID(), Token: "caller-supplied"}
	if err := withToken.BeforeCreate(nil); err != nil {
		t.Fatalf("Session.BeforeCreate: %v", err)
	}
	if withToken.Token != "caller-supplied" {
		t.Errorf("Session.BeforeCreate overwrote Token: got %q", withToken.Token)
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"future", now.Add(time.Hour), false},
		{"past", now.Add(-time.Hour), true},
		{"exact boundary", now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{ExpiresAt: tt.expiresAt}
			if got := s.Expired(now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPostPublished(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name        string
		status      PostStatus
		publishedAt *time.Time
		want        bool
	}{
		{"published with past timestamp", PostPublished, &past, true},
		{"published scheduled ahead", PostPublished, &future, false},
		{"published without timestamp", PostPublished, nil, false},
		{"draft", PostDraft, &past, false},
		{"archived", PostArchived, &past, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Post{Status: tt.status, PublishedAt: tt.publishedAt}
			if got := p.Published(now); got != tt.want {
				t.Errorf("Published() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTableNames(t *testing.T) {
	tests := []struct {
		name  string
		got   string
		table string
	}{
		{"users", User{}.TableName(), "users"},
		{"profiles", Profile{}.TableName(), "profiles"},
		{"sessions", Session{}.TableName(), "sessions"},
		{"posts", Post{}.TableName(), "posts"},
		{"categories", Category{}.TableName(), "categories"},
		{"tags", Tag{}.TableName(), "tags"},
		{"post_categories", PostCategory{}.TableName(), "post_categories"},
		{"post_tags", PostTag{}.TableName(), "post_tags"},
		{"comments", Comment{}.TableName(), "comments"},
		{"likes", Like{}.TableName(), "likes"},
		{"bookmarks", Bookmark{}.TableName(), "bookmarks"},
		{"media", Media{}.TableName(), "media"},
		{"media_variants", MediaVariant{}.TableName(), "media_variants"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.table {
				t.Errorf("TableName() = %q, want %q", tt.got, tt.table)
			}
		})
	}
}

func TestDetectMime(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	mime, ext, err := DetectMime(bytes.NewReader(png))
	if err != nil {
		t.Fatalf("DetectMime: %v", err)
	}
	if mime != "image/png" {
		t.Errorf("mime = %q, want image/png", mime)
	}
	if ext != ".png" {
		t.Errorf("ext = %q, want .png", ext)
	}
}

func TestMimeMatches(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jsonBody := []byte(`{"title": "hello"}`)

	tests := []struct {
		name     string
		content  []byte
		declared string
		want     bool
	}{
		{"exact match", png, "image/png", true},
		{"mismatch", png, "image/jpeg", false},
		{"ancestor match", jsonBody, "text/plain", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MimeMatches(bytes.NewReader(tt.content), tt.declared)
			if err != nil {
				t.Fatalf("MimeMatches: %v", err)
			}
			if got != tt.want {
				t.Errorf("MimeMatches(%q) = %v, want %v", tt.declared, got, tt.want)
			}
		})
	}
}
