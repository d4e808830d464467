package main

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quillhq/datastore/pkg/passhash"
	"github.com/quillhq/datastore/pkg/slugx"
	"github.com/quillhq/datastore/pkg/textx"
	"github.com/quillhq/datastore/postgres/model"
)

type fixtureFile struct {
	Users      []userFixture     `yaml:"users"`
	Categories []categoryFixture `yaml:"categories"`
	Tags       []string          `yaml:"tags"`
	Posts      []postFixture     `yaml:"posts"`
}

type userFixture struct {
	Email       string `yaml:"email"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	Role        string `yaml:"role"`
	DisplayName string `yaml:"displayName"`
	Bio         string `yaml:"bio"`
}

type categoryFixture struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Children    []categoryFixture `yaml:"children"`
}

type postFixture struct {
	Title      string   `yaml:"title"`
	Author     string   `yaml:"author"` // username reference
	Excerpt    string   `yaml:"excerpt"`
	Content    string   `yaml:"content"`
	Status     string   `yaml:"status"`
	Categories []string `yaml:"categories"` // slug references
	Tags       []string `yaml:"tags"`
}

type seedStats struct {
	users, categories, tags, posts int
}

// seed inserts the fixtures, skipping anything already present so the tool
// can run repeatedly against the same database.
func seed(ctx context.Context, db *gorm.DB, fx fixtureFile) (seedStats, error) {
	var st seedStats
	db = db.WithContext(ctx)

	for _, u := range fx.Users {
		if err := seedUser(db, u, &st); err != nil {
			return st, err
		}
	}
	if err := seedCategories(db, fx.Categories, nil, &st); err != nil {
		return st, err
	}
	for _, name := range fx.Tags {
		rec := model.Tag{Name: name, Slug: slugx.Make(name)}
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
		if res.Error != nil {
			return st, fmt.Errorf("tag %q: %w", name, res.Error)
		}
		st.tags += int(res.RowsAffected)
	}
	for _, p := range fx.Posts {
		if err := seedPost(db, p, &st); err != nil {
			return st, err
		}
	}
	return st, nil
}

func seedUser(db *gorm.DB, u userFixture, st *seedStats) error {
	role := model.Role(u.Role)
	if u.Role == "" {
		role = model.RoleReader
	}
	if !role.Valid() {
		return fmt.Errorf("user %q: unknown role %q", u.Username, u.Role)
	}

	rec := model.User{
		Email:         u.Email,
		Username:      u.Username,
		Role:          role,
		EmailVerified: true,
	}
	if u.Password != "" {
		hash, err := passhash.Hash(u.Password)
		if err != nil {
			return fmt.Errorf("user %q: %w", u.Username, err)
		}
		rec.PasswordHash = &hash
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
	if res.Error != nil {
		return fmt.Errorf("user %q: %w", u.Username, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil
	}
	st.users++

	if u.DisplayName == "" && u.Bio == "" {
		return nil
	}
	profile := model.Profile{UserID: rec.ID, DisplayName: u.DisplayName, Bio: u.Bio}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&profile).Error; err != nil {
		return fmt.Errorf("profile %q: %w", u.Username, err)
	}
	return nil
}

func seedCategories(db *gorm.DB, cats []categoryFixture, parentID *string, st *seedStats) error {
	for _, c := range cats {
		rec := model.Category{
			Name:        c.Name,
			Slug:        slugx.Make(c.Name),
			Description: c.Description,
			ParentID:    parentID,
		}
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
		if res.Error != nil {
			return fmt.Errorf("category %q: %w", c.Name, res.Error)
		}
		if res.RowsAffected == 0 {
			// Conflict left rec.ID unset; resolve it for the children.
			if err := db.Where("slug = ?", rec.Slug).First(&rec).Error; err != nil {
				return fmt.Errorf("category %q: %w", c.Name, err)
			}
		} else {
			st.categories++
		}
		if err := seedCategories(db, c.Children, &rec.ID, st); err != nil {
			return err
		}
	}
	return nil
}

func seedPost(db *gorm.DB, p postFixture, st *seedStats) error {
	var author model.User
	if err := db.Where("username = ?", p.Author).First(&author).Error; err != nil {
		return fmt.Errorf("post %q: author %q: %w", p.Title, p.Author, err)
	}

	status := model.PostStatus(p.Status)
	if p.Status == "" {
		status = model.PostDraft
	}
	if !status.Valid() {
		return fmt.Errorf("post %q: unknown status %q", p.Title, p.Status)
	}

	excerpt := p.Excerpt
	if excerpt == "" {
		excerpt = textx.Excerpt(p.Content, 200)
	}

	rec := model.Post{
		AuthorID:   &author.ID,
		Title:      p.Title,
		Slug:       slugx.Make(p.Title),
		Excerpt:    excerpt,
		Content:    p.Content,
		Status:     status,
		Visibility: model.VisibilityPublic,
	}
	if status == model.PostPublished {
		now := time.Now().UTC()
		rec.PublishedAt = &now
	}

	res := db.Omit("Categories", "Tags").Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
	if res.Error != nil {
		return fmt.Errorf("post %q: %w", p.Title, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil
	}
	st.posts++

	for _, slug := range p.Categories {
		var cat model.Category
		if err := db.Where("slug = ?", slug).First(&cat).Error; err != nil {
			return fmt.Errorf("post %q: category %q: %w", p.Title, slug, err)
		}
		if err := db.Model(&rec).Association("Categories").Append(&cat); err != nil {
			return fmt.Errorf("post %q: category %q: %w", p.Title, slug, err)
		}
	}
	for _, slug := range p.Tags {
		var tag model.Tag
		if err := db.Where("slug = ?", slug).First(&tag).Error; err != nil {
			return fmt.Errorf("post %q: tag %q: %w", p.Title, slug, err)
		}
		if err := db.Model(&rec).Association("Tags").Append(&tag); err != nil {
			return fmt.Errorf("post %q: tag %q: %w", p.Title, slug, err)
		}
	}
	return nil
}
