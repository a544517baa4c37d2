package router

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/strsplit/internal/apperr"
	"github.com/DjordjeVuckovic/strsplit/pkg/strsplit"
	"github.com/labstack/echo/v4"
)

type SplitRequest struct {
	Text      string `json:"text" query:"text"`
	Delimiter string `json:"delimiter" query:"delimiter"`
}

type SplitResponse struct {
	Tokens []string `json:"tokens"`
	Count  int      `json:"count"`
}

type UntilResponse struct {
	Token string `json:"token"`
}

type SplitRouter struct {
	e *echo.Echo
}

func NewSplitRouter(e *echo.Echo) *SplitRouter {
	return &SplitRouter{e: e}
}

func (r *SplitRouter) Bind() {
	r.e.GET("/split", r.splitHandler)
	r.e.POST("/split", r.splitHandler)
	r.e.GET("/until", r.untilHandler)
}

func (r *SplitRouter) splitHandler(c echo.Context) error {
	var req SplitRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if !utf8.ValidString(req.Text) {
		return apperr.NewValidation("text is not valid UTF-8")
	}

	d, err := strsplit.ParseDelimiter(req.Delimiter)
	if err != nil {
		return fmt.Errorf("parse delimiter: %w", err)
	}

	tokens := strsplit.Collect(req.Text, d)
	if tokens == nil {
		tokens = []string{}
	}

	return c.JSON(http.StatusOK, SplitResponse{Tokens: tokens, Count: len(tokens)})
}

func (r *SplitRouter) untilHandler(c echo.Context) error {
	text := c.QueryParam("text")
	runeParam := c.QueryParam("rune")

	if !utf8.ValidString(text) {
		return apperr.NewValidation("text is not valid UTF-8")
	}

	if utf8.RuneCountInString(runeParam) != 1 || !utf8.ValidString(runeParam) {
		return apperr.NewValidation("rune parameter must be exactly one character")
	}
	delim, _ := utf8.DecodeRuneInString(runeParam)

	// UntilRune treats a missing token as a broken invariant; over HTTP it is
	// bad input.
	token, ok := strsplit.New(text, strsplit.Rune(delim)).Next()
	if !ok {
		return apperr.NewValidationf("text %q contains no token before %q", text, delim)
	}

	return c.JSON(http.StatusOK, UntilResponse{Token: token})
}
