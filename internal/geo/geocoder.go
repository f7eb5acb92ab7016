package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

type Geocoder interface {
	// Geocode returns nil, nil when the service knows nothing about address.
	Geocode(ctx context.Context, address string) (*Coordinate, error)
}

type GeocoderConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type yandexGeocoder struct {
	client  http.Client
	log     *logrus.Entry
	apiKey  string
	baseURL string
}

func NewYandexGeocoder(cfg GeocoderConfig, log *logrus.Entry) Geocoder {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Second * 10
	}

	return &yandexGeocoder{
		client: http.Client{
			Timeout: timeout,
		},
		log:     log,
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
	}
}

type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

func (g *yandexGeocoder) Geocode(ctx context.Context, address string) (*Coordinate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL, nil)
	if err != nil {
		g.log.Errorf("geocode: failed to create request - %v", err)
		return nil, fmt.Errorf("failed to create geocode request - %w", err)
	}

	q := url.Values{}
	q.Add("geocode", address)
	q.Add("apikey", g.apiKey)
	q.Add("format", "json")
	req.URL.RawQuery = q.Encode()

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Debugf("geocode: failed request for %q - %v", address, err)
		return nil, fmt.Errorf("failed geocode request - %w", err)
	}
	defer resp.Body.Close()

	bts, err := io.ReadAll(resp.Body)
	if err != nil {
		g.log.Debugf("geocode: failed readAll body - %v", err)
		return nil, fmt.Errorf("failed read body - %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: statuscode - %d, body - %s", errGeocoderStatus, resp.StatusCode, string(bts))
	}

	var body geocodeResponse
	if err := json.Unmarshal(bts, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", errGeocoderResponse, err)
	}

	found := body.Response.GeoObjectCollection.FeatureMember
	if len(found) == 0 {
		return nil, nil
	}

	coordinate, err := decodeCoordinate(found[0].GeoObject.Point.Pos)
	if err != nil {
		return nil, fmt.Errorf("%w: pos %q", errGeocoderResponse, found[0].GeoObject.Point.Pos)
	}

	return &coordinate, nil
}
