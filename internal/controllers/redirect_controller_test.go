package controllers

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"

	"github.com/fsdevblog/urlmapper/internal/config"
	"github.com/fsdevblog/urlmapper/internal/models"
	"github.com/fsdevblog/urlmapper/internal/services"
)

func (s *MappingsControllerSuite) TestRedirect() {
	redirectTo := "https://example.com/target?q=1"

	s.resolverMock.On("Resolve", mock.Anything, "http://test.com/good1234").
		Return(&models.Mapping{ID: 1, ActualURL: redirectTo}, nil)
	s.resolverMock.On("Resolve", mock.Anything, "http://test.com/missing1").
		Return(nil, services.ErrRecordNotFound)
	s.resolverMock.On("Resolve", mock.Anything, "http://test.com/expired1").
		Return(nil, services.ErrExpired)
	s.resolverMock.On("Resolve", mock.Anything, "http://test.com/broken12").
		Return(nil, errors.New("store is down"))

	tests := []struct {
		name       string
		slug       string
		wantStatus int
		wantError  string
	}{
		{name: "found", slug: "good1234", wantStatus: http.StatusMovedPermanently},
		{name: "not found", slug: "missing1", wantStatus: http.StatusNotFound, wantError: MsgShortURLNotFound},
		{name: "expired", slug: "expired1", wantStatus: http.StatusGone, wantError: MsgShortURLExpired},
		{name: "store error", slug: "broken12", wantStatus: http.StatusInternalServerError, wantError: MsgRedirectFailed},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.makeRequest(requestFields{
				Method: http.MethodGet,
				URL:    "http://test.com/" + tt.slug,
			})
			defer res.Body.Close()

			s.Equal(tt.wantStatus, res.StatusCode)
			if tt.wantStatus == http.StatusMovedPermanently {
				s.Equal(redirectTo, res.Header.Get("Location"))
				return
			}
			s.Empty(res.Header.Get("Location"))
			var resp errorResponse
			s.Require().NoError(json.NewDecoder(res.Body).Decode(&resp))
			s.Equal(tt.wantError, resp.Error)
		})
	}
	s.resolverMock.AssertNumberOfCalls(s.T(), "Resolve", len(tests))
}

func (s *MappingsControllerSuite) TestRedirect_BaseURL() {
	s.router = s.setupRouter(config.Config{BaseURL: "https://sho.rt"})
	s.resolverMock.On("Resolve", mock.Anything, "https://sho.rt/Xy12Zw34").
		Return(&models.Mapping{ID: 1, ActualURL: "https://example.com"}, nil).Once()

	res := s.makeRequest(requestFields{
		Method: http.MethodGet,
		URL:    "http://internal:8000/Xy12Zw34",
	})
	defer res.Body.Close()

	s.Equal(http.StatusMovedPermanently, res.StatusCode)
	s.Equal("https://example.com", res.Header.Get("Location"))
	s.resolverMock.AssertExpectations(s.T())
}

func (s *MappingsControllerSuite) TestRedirect_StaticRoutesWin() {
	s.mappingMock.On("List", mock.Anything).Return([]models.Mapping{}, nil).Once()

	res := s.makeRequest(requestFields{Method: http.MethodGet, URL: "/url-shortener"})
	defer res.Body.Close()

	s.Equal(http.StatusOK, res.StatusCode)
	s.resolverMock.AssertNotCalled(s.T(), "Resolve", mock.Anything, mock.Anything)
}
