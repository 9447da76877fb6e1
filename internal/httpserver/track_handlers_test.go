package httpserver_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/onlinemarket/shop/internal/models"
	"github.com/onlinemarket/shop/internal/service"
	"github.com/onlinemarket/shop/internal/transport"
)

func TestTrackListOrders(t *testing.T) {
	env := newTestEnv(t)
	ck := accessCookie(t, 1)

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		o := models.Order{
			UserID:    1,
			TrackID:   service.NewTrackID(),
			Status:    models.OrderStatusRegistered,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, env.DB.Create(&o).Error)
	}

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/track", nil, ck)
	require.NoError(t, env.Track.GetOrders(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []transport.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	require.Equal(t, uint(2), resp[0].ID) // newest first
}

func TestTrackListOrdersEmpty(t *testing.T) {
	env := newTestEnv(t)
	ck := accessCookie(t, 1)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/track", nil, ck)
	require.NoError(t, env.Track.GetOrders(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "You have no registered order!", resp.Message)
}

func TestTrackOrderDetail(t *testing.T) {
	env := newTestEnv(t)
	ck := accessCookie(t, 1)

	o := models.Order{UserID: 1, TrackID: service.NewTrackID(), Status: models.OrderStatusRegistered, CreatedAt: time.Now()}
	require.NoError(t, env.DB.Create(&o).Error)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/track/1", nil, ck)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Track.GetOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, o.TrackID, resp.TrackID)
	require.Equal(t, models.OrderStatusRegistered, resp.Status)
}

// A missing or foreign order answers 200 with a message body, not 404.
func TestTrackOrderDetailNotFoundShape(t *testing.T) {
	env := newTestEnv(t)

	theirs := models.Order{UserID: 2, TrackID: service.NewTrackID(), Status: models.OrderStatusRegistered, CreatedAt: time.Now()}
	require.NoError(t, env.DB.Create(&theirs).Error)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/track/1", nil, accessCookie(t, 1))
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Track.GetOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "There is no order with the entered id!", resp.Message)

	rec, c = env.doJSONRequest(http.MethodGet, "/api/v1/track/999", nil, accessCookie(t, 1))
	c.SetParamNames("id")
	c.SetParamValues("999")
	require.NoError(t, env.Track.GetOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "There is no order with the entered id!", resp.Message)
}
