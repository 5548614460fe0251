package api

import (
	"context"
	"strconv"
)

func (c *Client) Vehicles(ctx context.Context) ([]Vehicle, error) {
	var out []Vehicle
	if err := c.get(ctx, "vehicle", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type AddVehicleRequest struct {
	Name     string `json:"name"`
	Plate    string `json:"plate"`
	Category string `json:"category"` // "car" or "motorcycle"
}

func (c *Client) AddVehicle(ctx context.Context, req AddVehicleRequest) (*Vehicle, error) {
	var v Vehicle
	if err := c.post(ctx, "vehicle", req, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) DeleteVehicle(ctx context.Context, id int64) error {
	return c.delete(ctx, "vehicle/"+strconv.FormatInt(id, 10))
}

func (c *Client) SetDefaultVehicle(ctx context.Context, id int64) (*Vehicle, error) {
	var v Vehicle
	if err := c.put(ctx, "vehicle/"+strconv.FormatInt(id, 10)+"/default", nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
