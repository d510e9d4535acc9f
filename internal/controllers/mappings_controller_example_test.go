package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/golang/mock/gomock"

	"github.com/fsdevblog/urlmapper/internal/config"
	"github.com/fsdevblog/urlmapper/internal/controllers/mocksctrl"
	"github.com/fsdevblog/urlmapper/internal/logs"
	"github.com/fsdevblog/urlmapper/internal/models"
	"github.com/fsdevblog/urlmapper/internal/services"
)

type mockTestHelper struct{}

func (h *mockTestHelper) Errorf(_ string, _ ...interface{}) {}
func (h *mockTestHelper) Fatalf(_ string, _ ...interface{}) {}

// ExampleMappingsController_Shorten публикация ссылки со слагом, который подбирает сервер.
func ExampleMappingsController_Shorten() {
	h := new(mockTestHelper)
	ctrl := gomock.NewController(h)
	defer ctrl.Finish()
	mockStore := mocksctrl.NewMockMappingStore(ctrl)

	router := SetupRouter(RouterParams{
		MappingService: mockStore,
		Resolver:       mocksctrl.NewMockResolver(ctrl),
		AppConf: config.Config{
			ServerAddress: ":80",
			BaseURL:       "http://test.com",
		},
		Logger: logs.MustNew(func(o *logs.LoggerOptions) {
			o.Level = logs.LevelTypeError
		}),
	})

	published := "http://test.com/q1w2e3r4"
	mockStore.EXPECT().
		Shorten(gomock.Any(), services.ShortenParams{ActualURL: "https://example.com", Base: "http://test.com"}).
		Return(&services.PublishResult{
			Mapping:  &models.Mapping{ID: 1, ActualURL: "https://example.com", PublishedURL: published},
			ShortURL: &published,
		}, nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/shorten", bytes.NewBufferString(`{"url":"https://example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	fmt.Printf("Status: %d\n", w.Code)
	fmt.Printf("Response: %s\n", w.Body.String())

	// Output:
	// Status: 201
	// Response: {"success":true,"data":{"id":1,"actual_url":"https://example.com","published_url":"http://test.com/q1w2e3r4","custom_slug":null,"expiration_date":null,"created_at":"0001-01-01T00:00:00Z","updated_at":"0001-01-01T00:00:00Z"},"short_url":"http://test.com/q1w2e3r4"}
}

// ExampleRedirectController_Redirect перенаправление по короткой ссылке.
func ExampleRedirectController_Redirect() {
	h := new(mockTestHelper)
	ctrl := gomock.NewController(h)
	defer ctrl.Finish()
	mockResolver := mocksctrl.NewMockResolver(ctrl)

	router := SetupRouter(RouterParams{
		MappingService: mocksctrl.NewMockMappingStore(ctrl),
		Resolver:       mockResolver,
		AppConf:        config.Config{BaseURL: "http://test.com"},
	})

	mockResolver.EXPECT().
		Resolve(gomock.Any(), "http://test.com/q1w2e3r4").
		Return(&models.Mapping{ActualURL: "https://example.com"}, nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/q1w2e3r4", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	fmt.Printf("Status: %d\n", w.Code)
	fmt.Printf("Location: %s\n", w.Header().Get("Location"))

	// Output:
	// Status: 301
	// Location: https://example.com
}
