package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"villa-service/internal/adapter/gin/response"
	"villa-service/internal/domain/villa"
	apperrors "villa-service/pkg/errors"
	"villa-service/pkg/logger"
)

// PaginationHeader carries the paging parameters applied to a list.
const PaginationHeader = "X-Pagination"

type envelope = response.APIResponse

// action runs one endpoint. It fills resp on success and returns an error
// otherwise; it never writes to c itself.
type action func(resp *envelope) error

// respond is the single boundary between endpoints and HTTP. Every error
// and panic raised by fn becomes a failure envelope, and exactly one
// envelope is written. Internal faults go out as HTTP 200 with statusCode 500 in
// the envelope (see response.APIResponse.HTTPStatus).
func respond(c *gin.Context, log *zap.Logger, controller, name string, fn action) {
	resp := response.New()
	log = logger.WithContext(c.Request.Context(), log).With(
		zap.String("controller", controller),
		zap.String("action", name),
	)

	defer func() {
		if r := recover(); r != nil {
			log.Error("handler panicked", zap.Any("panic", r), zap.Stack("stack"))
			resp = response.New()
			resp.Fail(http.StatusInternalServerError, fmt.Sprint(r))
			resp.Write(c)
		}
	}()

	if err := fn(resp); err != nil {
		resp.FromError(err)
		if resp.StatusCode >= http.StatusInternalServerError {
			log.Error("request failed", zap.Error(err))
		} else {
			log.Warn("request rejected", zap.Int("status", resp.StatusCode), zap.Strings("errors", resp.ErrorMessages))
		}
	}
	resp.Write(c)
}

// decodeBody reads a JSON body into a new T. An empty body or a literal
// null yields (nil, nil) so the use case can reject it.
func decodeBody[T any](c *gin.Context) (*T, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, apperrors.NewValidationError("failed to read request body")
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	in := new(T)
	if err := binding.JSON.BindBody(raw, in); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid request body: %v", err))
	}
	return in, nil
}

// pathID parses the ":id" path parameter.
func pathID(c *gin.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(fmt.Sprintf("id %q must be a valid number", raw))
	}
	return id, nil
}

// queryInt parses an optional integer query parameter. ok is false when
// the parameter is absent or empty.
func queryInt(c *gin.Context, name string) (n int, ok bool, err error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(raw)
	if err != nil {
		return 0, false, apperrors.NewValidationError(fmt.Sprintf("%s must be a valid number", name))
	}
	return n, true, nil
}

// pageQuery reads pageNumber and pageSize.
func pageQuery(c *gin.Context) (number, size int, err error) {
	if number, _, err = queryInt(c, "pageNumber"); err != nil {
		return 0, 0, err
	}
	if size, _, err = queryInt(c, "pageSize"); err != nil {
		return 0, 0, err
	}
	return number, size, nil
}

type pagination struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

func setPagination(c *gin.Context, page villa.Page) {
	data, err := json.Marshal(pagination{PageNumber: page.Number, PageSize: page.Size})
	if err != nil {
		return
	}
	c.Header(PaginationHeader, string(data))
}

// location builds the Location header for a created resource.
func location(c *gin.Context, id int) string {
	return fmt.Sprintf("%s/%d", c.FullPath(), id)
}
