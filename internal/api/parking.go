package api

import (
	"context"
	"net/url"
	"strconv"
)

// SearchParkings lists parking lots matching the free-text keyword. An
// empty keyword returns every lot.
func (c *Client) SearchParkings(ctx context.Context, keyword string) ([]Parking, error) {
	q := url.Values{}
	if keyword != "" {
		q.Set("Keyword", keyword)
	}
	var lots []Parking
	if err := c.get(ctx, "parking", q, &lots); err != nil {
		return nil, err
	}
	return lots, nil
}

func (c *Client) GetParking(ctx context.Context, parkingID int64) (*Parking, error) {
	var lot Parking
	if err := c.get(ctx, "parking/"+strconv.FormatInt(parkingID, 10), nil, &lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

func (c *Client) FavoriteAddresses(ctx context.Context) ([]FavoriteAddress, error) {
	var out []FavoriteAddress
	if err := c.get(ctx, "favorite-address", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddFavoriteAddress(ctx context.Context, fav FavoriteAddress) (*FavoriteAddress, error) {
	var out FavoriteAddress
	if err := c.post(ctx, "favorite-address", fav, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteFavoriteAddress(ctx context.Context, id int64) error {
	return c.delete(ctx, "favorite-address/"+strconv.FormatInt(id, 10))
}
