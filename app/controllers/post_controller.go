package controllers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"estatehub/app/auth"
	"estatehub/app/errs"
	"estatehub/app/models"
	"estatehub/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for property listings
type PostController struct {
	postService *services.PostService
	timeout     time.Duration
}

// NewPostController creates a new PostController. Each request gets at most
// timeout to talk to the store.
func NewPostController(postService *services.PostService, timeout time.Duration) *PostController {
	return &PostController{
		postService: postService,
		timeout:     timeout,
	}
}

// createPostRequest is the body of POST /posts.
type createPostRequest struct {
	PostData   *models.Post       `json:"postData"`
	PostDetail *models.PostDetail `json:"postDetail"`
}

// parseListFilter reads the listing query. Unparseable numbers fall back
// to the unconstrained value, as do a non-positive bedroom count or upper
// price bound and a negative lower price bound.
func parseListFilter(q url.Values) models.PostFilter {
	filter := models.NewPostFilter()
	filter.City = q.Get("city")
	filter.Type = models.ListingType(q.Get("type"))
	filter.Property = models.PropertyKind(q.Get("property"))

	if n, err := strconv.Atoi(q.Get("bedroom")); err == nil && n > 0 {
		filter.Bedroom = &n
	}
	if n, err := strconv.Atoi(q.Get("minPrice")); err == nil && n > 0 {
		filter.MinPrice = n
	}
	if n, err := strconv.Atoi(q.Get("maxPrice")); err == nil && n > 0 {
		filter.MaxPrice = n
	} else {
		filter.MaxPrice = math.MaxInt
	}
	return filter
}

// Index handles listing posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, pc.timeout)
	defer cancel()

	posts, err := pc.postService.ListPosts(ctx, parseListFilter(r.URL.Query()))
	if err != nil {
		sendError(w, r, err, "Failed to get posts")
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, pc.timeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	view, err := pc.postService.GetPost(ctx, id, auth.UserIDFrom(r.Context()))
	if err != nil {
		sendError(w, r, err, "Failed to get post")
		return
	}
	sendJSON(w, http.StatusOK, view)
}

// Create handles creating a new post owned by the caller
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var body createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errs.NewBadRequestError("Invalid JSON: "+err.Error(), nil, nil).Write(w)
		return
	}
	if body.PostData == nil || body.PostDetail == nil {
		errs.NewBadRequestError("Missing required data", nil, nil).Write(w)
		return
	}

	ctx, cancel := requestContext(r, pc.timeout)
	defer cancel()

	post, err := pc.postService.CreatePost(ctx, auth.UserIDFrom(r.Context()), body.PostData, body.PostDetail)
	if err != nil {
		sendError(w, r, err, "Failed to add post")
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Edit handles updating a post owned by the caller
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	var update models.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		errs.NewBadRequestError("Invalid JSON: "+err.Error(), nil, nil).Write(w)
		return
	}

	ctx, cancel := requestContext(r, pc.timeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	post, err := pc.postService.UpdatePost(ctx, auth.UserIDFrom(r.Context()), id, &update)
	if err != nil {
		sendError(w, r, err, "Failed to update post")
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post owned by the caller
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, pc.timeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	if err := pc.postService.DeletePost(ctx, auth.UserIDFrom(r.Context()), id); err != nil {
		sendError(w, r, err, "Failed to delete post")
		return
	}
	sendMessage(w, http.StatusOK, "Post deleted")
}
