package errors_test

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/vitals/errors"
	"github.com/tidepool-org/vitals/store"
)

var _ = Describe("Custom HTTP Error Handler", func() {
	DescribeTable("maps errors to status codes",
		func(err error, code int) {
			e := echo.New()
			e.HTTPErrorHandler = errors.CustomHTTPErrorHandler
			e.GET("/", func(c echo.Context) error { return err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			Expect(rec.Code).To(Equal(code))
		},
		Entry("wrapped bad request", fmt.Errorf("%w: weight must be positive", errors.BadRequest), http.StatusBadRequest),
		Entry("unauthorized", errors.Unauthorized, http.StatusUnauthorized),
		Entry("wrapped not found", fmt.Errorf("patient %w", errors.NotFound), http.StatusNotFound),
		Entry("store conflict", fmt.Errorf("unable to save patients: %w", store.ErrConflict), http.StatusConflict),
		Entry("echo error", echo.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType),
		Entry("plain error", stdErrors.New("disk full"), http.StatusInternalServerError),
	)

	It("keeps the detail of wrapped errors in the response", func() {
		e := echo.New()
		e.HTTPErrorHandler = errors.CustomHTTPErrorHandler
		e.GET("/", func(c echo.Context) error {
			return fmt.Errorf("%w: height must be positive", errors.BadRequest)
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(rec.Body.String()).To(ContainSubstring("bad request: height must be positive"))
	})
})
