package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/DucPPhan/parknow/internal/api"
	"github.com/DucPPhan/parknow/internal/session"

	"go.uber.org/zap"
)

const timeFlagLayout = "2006-01-02T15:04"

func parseTimeFlag(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timeFlagLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, want YYYY-MM-DDThh:mm", s)
	}
	return t, nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	phone := fs.String("phone", "", "phone number")
	email := fs.String("email", "", "email (optional)")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	p, err := a.client.Register(ctx, api.RegisterRequest{
		Name: *name, Phone: *phone, Email: *email, Password: *password,
	})
	if err != nil {
		return err
	}
	fmt.Printf("registered %s (id %d), now log in\n", p.Name, p.ID)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	phone := fs.String("phone", "", "phone number")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	res, err := a.client.Login(ctx, *phone, *password)
	if err != nil {
		return err
	}
	if err := a.creds.Set(res.Token, res.Profile.ID, res.Profile.Phone); err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", res.Profile.Name)
	return nil
}

func (a *app) profile(ctx context.Context) error {
	p, err := a.client.Profile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s\nphone: %s\nemail: %s\n", p.Name, p.Phone, p.Email)
	return nil
}

func (a *app) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	keyword := fs.String("q", "", "keyword")
	fs.Parse(args)

	lots, err := a.client.SearchParkings(ctx, *keyword)
	if err != nil {
		return err
	}
	for _, lot := range lots {
		fmt.Printf("%4d  %-20s %s  (%d/%d free, %.0f/h)\n",
			lot.ID, lot.Name, lot.Address, lot.OpenSlots, lot.TotalSlots, lot.PricePerHr)
	}
	return nil
}

func (a *app) lot(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lot", flag.ExitOnError)
	parkingID := fs.Int64("parking", 0, "parking lot id")
	fs.Parse(args)

	lot, err := a.client.GetParking(ctx, *parkingID)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n%s\n%d/%d slots free, %.0f/h\n",
		lot.Name, lot.Address, lot.OpenSlots, lot.TotalSlots, lot.PricePerHr)
	if lot.Description != "" {
		fmt.Println(lot.Description)
	}
	return nil
}

// slots renders the lot layout as a grid: label for free slots, xx for
// taken ones, spaces for gap cells.
func (a *app) slots(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("slots", flag.ExitOnError)
	parkingID := fs.Int64("parking", 0, "parking lot id")
	startStr := fs.String("start", "", "start time (YYYY-MM-DDThh:mm)")
	endStr := fs.String("end", "", "end time (YYYY-MM-DDThh:mm)")
	fs.Parse(args)

	start, err := parseTimeFlag(*startStr)
	if err != nil {
		return err
	}
	end, err := parseTimeFlag(*endStr)
	if err != nil {
		return err
	}

	sess := session.New(a.client, *parkingID, "", a.creds.UserID())
	if err := sess.SetWindow(start, end); err != nil {
		return err
	}
	if err := sess.LoadSlots(ctx); err != nil {
		return err
	}

	printGrid(sess.Grid())
	return nil
}

func printGrid(g session.Grid) {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			slot := g.At(r, c)
			switch {
			case slot == nil:
				fmt.Print("     ")
			case slot.IsAvailable:
				fmt.Printf(" %-4s", slot.Label)
			default:
				fmt.Print(" xx  ")
			}
		}
		fmt.Println()
	}
}

func (a *app) quote(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("quote", flag.ExitOnError)
	parkingID := fs.Int64("parking", 0, "parking lot id")
	startStr := fs.String("start", "", "start time (YYYY-MM-DDThh:mm)")
	hours := fs.Int("hours", 1, "duration in hours")
	vehicleType := fs.String("type", "car", "vehicle type: car or motorcycle")
	fs.Parse(args)

	start, err := parseTimeFlag(*startStr)
	if err != nil {
		return err
	}

	trafficID := api.TrafficCar
	if *vehicleType == "motorcycle" {
		trafficID = api.TrafficMotorcycle
	}

	q, err := a.client.ExpectedPrice(ctx, *parkingID, start, *hours, trafficID)
	if err != nil {
		return err
	}
	fmt.Printf("expected price: %.0f\n", q.Amount)
	return nil
}

// book runs the whole session flow: window -> slots -> slot selection ->
// vehicle or guest details -> pricing -> submit.
func (a *app) book(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	parkingID := fs.Int64("parking", 0, "parking lot id")
	startStr := fs.String("start", "", "start time (YYYY-MM-DDThh:mm)")
	endStr := fs.String("end", "", "end time (YYYY-MM-DDThh:mm)")
	slotLabel := fs.String("slot", "", "slot label, e.g. A3")
	vehicleID := fs.Int64("vehicle", 0, "vehicle id (authenticated; 0 = default vehicle)")
	guestName := fs.String("guest-name", "", "guest name (guest booking)")
	guestPhone := fs.String("guest-phone", "", "guest phone (guest booking)")
	guestPlate := fs.String("guest-plate", "", "guest vehicle plate (guest booking)")
	guestType := fs.String("guest-type", "car", "guest vehicle type: car or motorcycle")
	payment := fs.String("payment", "cash", "payment method")
	notes := fs.String("notes", "", "notes for the lot operator")
	fs.Parse(args)

	start, err := parseTimeFlag(*startStr)
	if err != nil {
		return err
	}
	end, err := parseTimeFlag(*endStr)
	if err != nil {
		return err
	}

	sess := session.New(a.client, *parkingID, "", a.creds.UserID())
	if err := sess.SetWindow(start, end); err != nil {
		return err
	}
	if err := sess.LoadSlots(ctx); err != nil {
		return err
	}

	slot, err := findSlot(sess.Slots(), *slotLabel)
	if err != nil {
		return err
	}
	if err := sess.SelectSlot(slot.ID); err != nil {
		return err
	}

	if sess.Authenticated() {
		v, err := a.pickVehicle(ctx, *vehicleID)
		if err != nil {
			return err
		}
		if err := sess.SetVehicle(*v); err != nil {
			return err
		}
	} else {
		typeID := api.TrafficCar
		if *guestType == "motorcycle" {
			typeID = api.TrafficMotorcycle
		}
		if err := sess.SetGuest(session.GuestInfo{
			Name:          *guestName,
			Phone:         *guestPhone,
			VehiclePlate:  *guestPlate,
			VehicleTypeID: typeID,
		}); err != nil {
			return err
		}
	}

	sess.SetPaymentMethod(*payment)
	sess.SetNotes(*notes)

	// A failed pricing fetch is soft: the quote stays unset and Submit
	// reports the session as incomplete, but we don't alert here.
	if err := sess.LoadPricing(ctx); err != nil {
		a.log.Debug("pricing fetch failed", zap.Error(err))
	}
	if q := sess.Quote(); q != nil {
		fmt.Printf("price: %.0f\n", q.Amount)
	}

	b, err := sess.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("booked slot %s, booking #%d (%s)\n", slot.Label, b.ID, b.Code)
	return nil
}

func findSlot(slots []api.Slot, label string) (*api.Slot, error) {
	if label == "" {
		return nil, errors.New("missing -slot")
	}
	for i := range slots {
		if strings.EqualFold(slots[i].Label, label) {
			return &slots[i], nil
		}
	}
	return nil, fmt.Errorf("no slot labeled %q", label)
}

// pickVehicle resolves the explicit -vehicle flag, or falls back to the
// account's default vehicle.
func (a *app) pickVehicle(ctx context.Context, id int64) (*api.Vehicle, error) {
	vehicles, err := a.client.Vehicles(ctx)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, errors.New("no vehicles registered; add one with 'parknow vehicles add'")
	}
	if id == 0 {
		for i := range vehicles {
			if vehicles[i].IsDefault {
				return &vehicles[i], nil
			}
		}
		return &vehicles[0], nil
	}
	for i := range vehicles {
		if vehicles[i].ID == id {
			return &vehicles[i], nil
		}
	}
	return nil, fmt.Errorf("no vehicle with id %d", id)
}

func (a *app) bookings(ctx context.Context) error {
	bookings, err := a.client.MyBookings(ctx)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		paid := " "
		if b.Paid {
			paid = "paid"
		}
		fmt.Printf("%4d  %s  %s - %s  %.0f  %-10s %s\n",
			b.ID, b.SlotLabel,
			b.StartTime.Format(timeFlagLayout), b.EndTime.Format("15:04"),
			b.Total, b.Status, paid)
	}
	return nil
}

func (a *app) bookingAction(ctx context.Context, args []string, name string) error {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	id := fs.Int64("id", 0, "booking id")
	fs.Parse(args)

	var b *api.Booking
	var err error
	if name == "checkin" {
		b, err = a.client.CheckIn(ctx, *id)
	} else {
		b, err = a.client.CheckOut(ctx, *id)
	}
	if err != nil {
		return err
	}
	fmt.Printf("booking #%d is now %s\n", b.ID, b.Status)
	return nil
}

func (a *app) rate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rate", flag.ExitOnError)
	id := fs.Int64("id", 0, "booking id")
	stars := fs.Int("stars", 5, "rating 1-5")
	comment := fs.String("comment", "", "comment")
	fs.Parse(args)

	b, err := a.client.RateBooking(ctx, *id, *stars, *comment)
	if err != nil {
		return err
	}
	fmt.Printf("rated booking #%d: %d stars\n", b.ID, b.Rating)
	return nil
}

func (a *app) pay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pay", flag.ExitOnError)
	id := fs.Int64("id", 0, "booking id")
	method := fs.String("method", "cash", "payment method")
	fs.Parse(args)

	b, err := a.client.PayBooking(ctx, *id, *method)
	if err != nil {
		return err
	}
	fmt.Printf("booking #%d paid via %s\n", b.ID, b.PaymentMethod)
	return nil
}

func (a *app) cancel(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := fs.Int64("id", 0, "booking id")
	reason := fs.String("reason", "", "cancellation reason")
	fs.Parse(args)

	b, err := a.client.CancelBooking(ctx, *id, *reason)
	if err != nil {
		return err
	}
	fmt.Printf("booking #%d cancelled\n", b.ID)
	return nil
}

func (a *app) vehicles(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		vehicles, err := a.client.Vehicles(ctx)
		if err != nil {
			return err
		}
		for _, v := range vehicles {
			def := " "
			if v.IsDefault {
				def = "*"
			}
			fmt.Printf("%s %4d  %-15s %-10s %s\n", def, v.ID, v.Name, v.Plate, v.Category)
		}
		return nil
	case "add":
		fs := flag.NewFlagSet("vehicles add", flag.ExitOnError)
		name := fs.String("name", "", "vehicle name")
		plate := fs.String("plate", "", "license plate")
		category := fs.String("category", "car", "car or motorcycle")
		fs.Parse(rest)

		v, err := a.client.AddVehicle(ctx, api.AddVehicleRequest{
			Name: *name, Plate: *plate, Category: *category,
		})
		if err != nil {
			return err
		}
		fmt.Printf("added vehicle %d (%s)\n", v.ID, v.Plate)
		return nil
	case "delete":
		fs := flag.NewFlagSet("vehicles delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "vehicle id")
		fs.Parse(rest)
		return a.client.DeleteVehicle(ctx, *id)
	case "default":
		fs := flag.NewFlagSet("vehicles default", flag.ExitOnError)
		id := fs.Int64("id", 0, "vehicle id")
		fs.Parse(rest)
		_, err := a.client.SetDefaultVehicle(ctx, *id)
		return err
	default:
		return fmt.Errorf("unknown vehicles subcommand %q", sub)
	}
}

func (a *app) favorites(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		favs, err := a.client.FavoriteAddresses(ctx)
		if err != nil {
			return err
		}
		for _, f := range favs {
			fmt.Printf("%4d  %-12s %s\n", f.ID, f.Label, f.Address)
		}
		return nil
	case "add":
		fs := flag.NewFlagSet("favorites add", flag.ExitOnError)
		label := fs.String("label", "", "short label, e.g. work")
		address := fs.String("address", "", "street address")
		lat := fs.Float64("lat", 0, "latitude")
		lon := fs.Float64("lon", 0, "longitude")
		fs.Parse(rest)

		f, err := a.client.AddFavoriteAddress(ctx, api.FavoriteAddress{
			Label: *label, Address: *address, Latitude: *lat, Longitude: *lon,
		})
		if err != nil {
			return err
		}
		fmt.Printf("added favorite %d (%s)\n", f.ID, f.Label)
		return nil
	case "delete":
		fs := flag.NewFlagSet("favorites delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "favorite id")
		fs.Parse(rest)
		return a.client.DeleteFavoriteAddress(ctx, *id)
	default:
		return fmt.Errorf("unknown favorites subcommand %q", sub)
	}
}
