package vehicle

type AddVehicleRequest struct {
	Name     string `json:"name" binding:"required"`
	Plate    string `json:"plate" binding:"required"`
	Category string `json:"category" binding:"required,oneof=car motorcycle"`
}
