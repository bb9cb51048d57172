package store

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/bloomwellness/studio-api/models"
)

// CreateBlogPost stores a new post. PublishedAt is stamped when the post is
// created already published.
func (s *DB) CreateBlogPost(in NewBlogPost) (*models.BlogPost, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return nil, nil
	}

	post := models.BlogPost{
		Title:         in.Title,
		Slug:          in.Slug,
		Excerpt:       in.Excerpt,
		Content:       in.Content,
		Author:        in.Author,
		Category:      in.Category,
		FeaturedImage: in.FeaturedImage,
		Published:     in.Published,
	}
	if in.Published == 1 {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := conn.Create(&post).Error; err != nil {
		log.WithError(err).Error("Failed to create blog post")
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return &post, nil
}

func (s *DB) GetBlogPostByID(id uint) (*models.BlogPost, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return nil, nil
	}

	var post models.BlogPost
	err := conn.First(&post, id).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithError(err).Warn("Failed to read blog post")
		}
		return nil, nil
	}
	return &post, nil
}

func (s *DB) GetBlogPostBySlug(slug string) (*models.BlogPost, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return nil, nil
	}

	var post models.BlogPost
	err := conn.Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithError(err).Warn("Failed to read blog post by slug")
		}
		return nil, nil
	}
	return &post, nil
}

// GetPublishedBlogPosts returns the public page of posts, newest
// publication first.
func (s *DB) GetPublishedBlogPosts(limit, offset int) ([]models.BlogPost, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return []models.BlogPost{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	var posts []models.BlogPost
	err := conn.Where("published = ?", 1).
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		log.WithError(err).Warn("Failed to list published blog posts")
		return []models.BlogPost{}, nil
	}
	return posts, nil
}

// GetAllBlogPosts returns every post regardless of publication state,
// newest creation first. Admin use only; the router gates access.
func (s *DB) GetAllBlogPosts() ([]models.BlogPost, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return []models.BlogPost{}, nil
	}

	var posts []models.BlogPost
	if err := conn.Order("created_at DESC").Find(&posts).Error; err != nil {
		log.WithError(err).Warn("Failed to list blog posts")
		return []models.BlogPost{}, nil
	}
	return posts, nil
}

// UpdateBlogPost applies a partial update and returns the updated post, or
// nil when the id does not exist. PublishedAt is stamped when the patch
// flips published to 1 and the post has never been published; it is kept
// as-is when a post is unpublished, so re-publishing preserves the original
// publication date.
func (s *DB) UpdateBlogPost(id uint, patch BlogPostPatch) (*models.BlogPost, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return nil, nil
	}

	existing, err := s.GetBlogPostByID(id)
	if err != nil || existing == nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Slug != nil {
		updates["slug"] = *patch.Slug
	}
	if patch.Excerpt != nil {
		updates["excerpt"] = *patch.Excerpt
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Author != nil {
		updates["author"] = *patch.Author
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.FeaturedImage != nil {
		updates["featured_image"] = *patch.FeaturedImage
	}
	if patch.Published != nil {
		updates["published"] = *patch.Published
		if *patch.Published == 1 && existing.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	}
	if len(updates) == 0 {
		return existing, nil
	}

	err = conn.Model(&models.BlogPost{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		log.WithError(err).Error("Failed to update blog post")
		return nil, fmt.Errorf("update blog post: %w", err)
	}
	return s.GetBlogPostByID(id)
}

// DeleteBlogPost removes the post and reports whether a row was deleted.
func (s *DB) DeleteBlogPost(id uint) (bool, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return false, nil
	}

	res := conn.Delete(&models.BlogPost{}, id)
	if res.Error != nil {
		log.WithError(res.Error).Error("Failed to delete blog post")
		return false, fmt.Errorf("delete blog post: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
