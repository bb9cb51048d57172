package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/bloomwellness/studio-api/cache"
	"github.com/bloomwellness/studio-api/config"
	"github.com/bloomwellness/studio-api/models"
	"github.com/bloomwellness/studio-api/store"
	"github.com/bloomwellness/studio-api/utils"
)

type BlogController struct {
	Cfg   *config.Config
	Store store.Store
	Cache *cache.Cache
}

func NewBlogController(cfg *config.Config, st store.Store, ch *cache.Cache) *BlogController {
	return &BlogController{Cfg: cfg, Store: st, Cache: ch}
}

// List godoc
// @Summary List published blog posts
// @Description Public paginated listing, newest publication first
// @Tags blog
// @Produce json
// @Success 200 {array} models.BlogPost
// @Router /api/blog/posts [get]
func (ctl *BlogController) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	key := fmt.Sprintf("list:%d:%d", limit, offset)
	var posts []models.BlogPost
	if ctl.Cache.GetBlog(c.Context(), key, &posts) {
		return c.JSON(posts)
	}

	posts, err := ctl.Store.GetPublishedBlogPosts(limit, offset)
	if err != nil {
		return internalError(c, "Failed to fetch blog posts")
	}
	ctl.Cache.SetBlog(c.Context(), key, posts)
	return c.JSON(posts)
}

// GetBySlug godoc
// @Summary Get a published blog post by slug
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/blog/posts/{slug} [get]
func (ctl *BlogController) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	key := "slug:" + slug
	var cached models.BlogPost
	if ctl.Cache.GetBlog(c.Context(), key, &cached) {
		return c.JSON(cached)
	}

	post, err := ctl.Store.GetBlogPostBySlug(slug)
	if err != nil {
		return internalError(c, "Failed to fetch blog post")
	}
	// Unpublished posts are indistinguishable from absent ones here.
	if post == nil || !post.IsPublished() {
		return notFound(c, "Post not found")
	}
	ctl.Cache.SetBlog(c.Context(), key, post)
	return c.JSON(post)
}

// AllPosts returns every post regardless of publication state, newest
// creation first. Admin only.
func (ctl *BlogController) AllPosts(c *fiber.Ctx) error {
	if !isAdmin(c) {
		return forbidden(c)
	}

	posts, err := ctl.Store.GetAllBlogPosts()
	if err != nil {
		return internalError(c, "Failed to fetch blog posts")
	}
	return c.JSON(posts)
}

type createBlogPostRequest struct {
	Title         string `json:"title" validate:"required"`
	Slug          string `json:"slug" validate:"required"`
	Excerpt       string `json:"excerpt" validate:"required"`
	Content       string `json:"content" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Category      string `json:"category" validate:"required"`
	FeaturedImage string `json:"featuredImage"`
	Published     int    `json:"published" validate:"oneof=0 1"`
}

// Create godoc
// @Summary Create a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Success 201 {object} models.BlogPost
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/blog/posts [post]
func (ctl *BlogController) Create(c *fiber.Ctx) error {
	req := new(createBlogPostRequest)
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "Cannot parse JSON", err)
	}
	if fields := utils.ValidateStruct(req); fields != nil {
		return validationFailed(c, fields)
	}

	if !isAdmin(c) {
		return forbidden(c)
	}

	post, err := ctl.Store.CreateBlogPost(store.NewBlogPost{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Author:        req.Author,
		Category:      req.Category,
		FeaturedImage: req.FeaturedImage,
		Published:     req.Published,
	})
	if err != nil || post == nil {
		return internalError(c, "Failed to create blog post")
	}
	ctl.Cache.InvalidateBlog(c.Context())
	return c.Status(fiber.StatusCreated).JSON(post)
}

type updateBlogPostRequest struct {
	Title         *string `json:"title" validate:"omitempty,min=1"`
	Slug          *string `json:"slug" validate:"omitempty,min=1"`
	Excerpt       *string `json:"excerpt" validate:"omitempty,min=1"`
	Content       *string `json:"content" validate:"omitempty,min=1"`
	Author        *string `json:"author" validate:"omitempty,min=1"`
	Category      *string `json:"category" validate:"omitempty,min=1"`
	FeaturedImage *string `json:"featuredImage"`
	Published     *int    `json:"published" validate:"omitempty,oneof=0 1"`
}

// Update applies a partial edit to a post. Admin only.
func (ctl *BlogController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, "Invalid post id", err)
	}
	req := new(updateBlogPostRequest)
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "Cannot parse JSON", err)
	}
	if fields := utils.ValidateStruct(req); fields != nil {
		return validationFailed(c, fields)
	}

	if !isAdmin(c) {
		return forbidden(c)
	}

	updated, err := ctl.Store.UpdateBlogPost(uint(id), store.BlogPostPatch{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Author:        req.Author,
		Category:      req.Category,
		FeaturedImage: req.FeaturedImage,
		Published:     req.Published,
	})
	if err != nil {
		return internalError(c, "Failed to update blog post")
	}
	if updated == nil {
		return notFound(c, "Post not found")
	}
	ctl.Cache.InvalidateBlog(c.Context())
	return c.JSON(updated)
}

// Delete removes a post. Admin only.
func (ctl *BlogController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, "Invalid post id", err)
	}

	if !isAdmin(c) {
		return forbidden(c)
	}

	deleted, err := ctl.Store.DeleteBlogPost(uint(id))
	if err != nil {
		return internalError(c, "Failed to delete blog post")
	}
	if !deleted {
		return notFound(c, "Post not found")
	}
	ctl.Cache.InvalidateBlog(c.Context())
	return c.JSON(fiber.Map{"success": true})
}
