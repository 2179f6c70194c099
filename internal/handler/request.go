package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noah-isme/sma-club-registry-api/internal/models"
	"github.com/noah-isme/sma-club-registry-api/internal/service"
	appErrors "github.com/noah-isme/sma-club-registry-api/pkg/errors"
	"github.com/noah-isme/sma-club-registry-api/pkg/querystring"
	"github.com/noah-isme/sma-club-registry-api/pkg/response"
)

// ListConfig bounds list requests and nested fetch-level expansion.
type ListConfig struct {
	DefaultPageSize int
	MaxPageSize     int
	MaxFetchDepth   int
}

func (c ListConfig) withDefaults() ListConfig {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = 50
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = 200
	}
	if c.MaxFetchDepth <= 0 {
		c.MaxFetchDepth = models.DefaultMaxFetchDepth
	}
	return c
}

var envelopeValidator = validator.New()

// NoData is the payload type of envelopes that carry no write data.
type NoData struct{}

// decodeQuery reads a request envelope from the bracketed query string.
func decodeQuery(c *gin.Context, out interface{}) error {
	if err := querystring.Decode(c.Request.URL.Query(), out); err != nil {
		return appErrors.BadRequest(err, "invalid query string")
	}
	if err := envelopeValidator.Struct(out); err != nil {
		return appErrors.BadRequest(err, "invalid request envelope")
	}
	return nil
}

// decodeBody reads a request envelope from the JSON body. An empty body is an
// empty envelope.
func decodeBody(c *gin.Context, out interface{}) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	if err := c.ShouldBindJSON(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return appErrors.BadRequest(err, "invalid payload")
	}
	if err := envelopeValidator.Struct(out); err != nil {
		return appErrors.BadRequest(err, "invalid request envelope")
	}
	return nil
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, appErrors.BadRequest(err, name+" must be a uuid")
	}
	return id, nil
}

func int64Param(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, appErrors.BadRequest(err, name+" must be an integer")
	}
	return id, nil
}

func missingData() error {
	return appErrors.Clone(appErrors.ErrBadRequest, "data is required")
}

func respondPage[T any](c *gin.Context, page *service.Page[T]) {
	response.JSON(c, http.StatusOK, page.Items, response.NewMeta(c.Request.URL, page.Page, page.Size, page.Total))
}
