package response

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/sma-club-registry-api/pkg/errors"
)

const versionKey = "api_version"

// Envelope represents the common response contract. Data and Error are never
// both set.
type Envelope struct {
	APIVersion string           `json:"api_version"`
	Data       interface{}      `json:"data"`
	Error      *appErrors.Error `json:"error"`
	Meta       *Meta            `json:"meta"`
}

// Meta accompanies list responses.
type Meta struct {
	Timestamp  time.Time   `json:"timestamp"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination carries page links and counts. Links are request paths with the
// `pagination[p]` parameter rewritten.
type Pagination struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
	Size  int     `json:"size"`
	Total int     `json:"total"`
}

// Version stamps every envelope written during the request with the given API version.
func Version(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(versionKey, version)
		c.Next()
	}
}

// NewMeta builds list metadata for the current request URL.
func NewMeta(u *url.URL, page, size, total int) *Meta {
	if size < 1 {
		size = 1
	}
	if page < 1 {
		page = 1
	}
	lastPage := (total + size - 1) / size
	if lastPage < 1 {
		lastPage = 1
	}

	p := &Pagination{
		First: pageLink(u, 1, size),
		Last:  pageLink(u, lastPage, size),
		Size:  size,
		Total: total,
	}
	if page < lastPage {
		next := pageLink(u, page+1, size)
		p.Next = &next
	}
	if page > 1 {
		prev := pageLink(u, minInt(page-1, lastPage), size)
		p.Prev = &prev
	}

	return &Meta{Timestamp: time.Now().UTC(), Pagination: p}
}

func pageLink(u *url.URL, page, size int) string {
	if u == nil {
		u = &url.URL{}
	}
	q := u.Query()
	q.Set("pagination[p]", strconv.Itoa(page))
	q.Set("pagination[size]", strconv.Itoa(size))
	return u.Path + "?" + q.Encode()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

// JSON sends a success response with optional list metadata.
func JSON(c *gin.Context, status int, data interface{}, meta *Meta) {
	noStore(c)
	c.JSON(status, Envelope{APIVersion: c.GetString(versionKey), Data: data, Meta: meta})
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data, nil)
}

// Error sends an error response converting the error to the common structure.
// The request path becomes the error source when none was set.
func Error(c *gin.Context, err error) {
	appErr := appErrors.Publish(err, c.Request.URL.Path)
	noStore(c)
	_ = c.Error(err)
	c.AbortWithStatusJSON(appErr.Code, Envelope{APIVersion: c.GetString(versionKey), Error: appErr})
}
