package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"albion-backend/internal/config"
	"albion-backend/internal/database"
	"albion-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedFile mirrors data/initial_data.yaml
type SeedFile struct {
	Colours    []string          `yaml:"colours"`
	Sizes      []string          `yaml:"sizes"`
	SizeRanges []SizeRangeData   `yaml:"size_ranges"`
	Processes  []string          `yaml:"processes"`
	Shifts     []ShiftData       `yaml:"shifts"`
	Clients    []string          `yaml:"clients"`
	Frames     []string          `yaml:"machine_frames"`
	Machines   []MachineData     `yaml:"machines"`
	Styles     []StyleData       `yaml:"styles"`
	Calendar   *DefaultCalendar  `yaml:"default_calendar"`
	Orders     *OrderGeneratorIn `yaml:"orders"`
}

type SizeRangeData struct {
	Name  string   `yaml:"name"`
	Sizes []string `yaml:"sizes"`
}

type ShiftData struct {
	Name      string `yaml:"name"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
}

type MachineData struct {
	MachineID   string `yaml:"machine_id"`
	MachineName string `yaml:"machine_name"`
	Frame       string `yaml:"machine_frame"`
}

type StyleData struct {
	StyleCode string             `yaml:"style_code"`
	StyleName string             `yaml:"style_name"`
	Frame     string             `yaml:"machine_frame"`
	GG        string             `yaml:"gg"`
	SizeRange string             `yaml:"size_range"`
	Colours   []string           `yaml:"colours"`
	Processes []StyleProcessData `yaml:"processes"`
}

type StyleProcessData struct {
	Name    string  `yaml:"name"`
	Minutes float64 `yaml:"minutes"`
}

type DefaultCalendar struct {
	StartDate string   `yaml:"start_date"`
	EndDate   string   `yaml:"end_date"`
	Weekdays  []string `yaml:"weekdays"`
	Shifts    []string `yaml:"shifts"`
}

// OrderGeneratorIn generates random submitted orders across the seeded
// styles, the way a few weeks of real bookings would look
type OrderGeneratorIn struct {
	Count       int `yaml:"count"`
	MinQuantity int `yaml:"min_quantity"`
	MaxQuantity int `yaml:"max_quantity"`
}

func main() {
	dataFile := "data/initial_data.yaml"
	if len(os.Args) > 1 {
		dataFile = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	raw, err := os.ReadFile(dataFile)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", dataFile, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("Failed to parse %s: %v", dataFile, err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return loadSeed(tx, &seed)
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Initial data loaded")
}

func loadSeed(tx *gorm.DB, seed *SeedFile) error {
	for _, name := range seed.Colours {
		if err := firstOrCreate(tx, &models.Colour{ColourName: name}, "colour_name = ?", name); err != nil {
			return err
		}
	}

	for _, value := range seed.Sizes {
		if err := firstOrCreate(tx, &models.Size{SizeValue: value}, "size_value = ?", value); err != nil {
			return err
		}
	}

	for _, sr := range seed.SizeRanges {
		var count int64
		if err := tx.Model(&models.SizeRange{}).Where("range_name = ?", sr.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		rangeRow := models.SizeRange{RangeName: sr.Name}
		for i, value := range sr.Sizes {
			rangeRow.Sizes = append(rangeRow.Sizes, models.SizeRangeSize{SizeValue: value, Idx: i})
		}
		if err := tx.Create(&rangeRow).Error; err != nil {
			return fmt.Errorf("create size range %s: %w", sr.Name, err)
		}
	}

	for _, name := range seed.Processes {
		if err := firstOrCreate(tx, &models.Process{ProcessName: name}, "process_name = ?", name); err != nil {
			return err
		}
	}

	for _, shift := range seed.Shifts {
		row := models.Shift{ShiftName: shift.Name, StartTime: shift.StartTime, EndTime: shift.EndTime}
		if err := firstOrCreate(tx, &row, "shift_name = ?", shift.Name); err != nil {
			return err
		}
	}

	for _, name := range seed.Clients {
		if err := firstOrCreate(tx, &models.Client{ClientName: name}, "client_name = ?", name); err != nil {
			return err
		}
	}

	frames := make(map[string]*models.MachineFrame)
	for _, name := range seed.Frames {
		frame := &models.MachineFrame{FrameName: name}
		if err := firstOrCreate(tx, frame, "frame_name = ?", name); err != nil {
			return err
		}
		frames[name] = frame
	}

	for _, m := range seed.Machines {
		frame, ok := frames[m.Frame]
		if !ok {
			return fmt.Errorf("machine %s references unknown frame %s", m.MachineID, m.Frame)
		}
		row := models.Machine{MachineID: m.MachineID, MachineName: m.MachineName, MachineFrameID: frame.ID}
		if err := firstOrCreate(tx, &row, "machine_id = ?", m.MachineID); err != nil {
			return err
		}
	}

	if err := loadStyles(tx, seed, frames); err != nil {
		return err
	}
	if err := loadDefaultCalendar(tx, seed.Calendar); err != nil {
		return err
	}
	return generateOrders(tx, seed.Orders)
}

func loadStyles(tx *gorm.DB, seed *SeedFile, frames map[string]*models.MachineFrame) error {
	for _, s := range seed.Styles {
		var count int64
		if err := tx.Model(&models.Style{}).Where("style_code = ?", s.StyleCode).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		frame, ok := frames[s.Frame]
		if !ok {
			return fmt.Errorf("style %s references unknown frame %s", s.StyleCode, s.Frame)
		}

		style := models.Style{
			StyleCode:      s.StyleCode,
			StyleName:      s.StyleName,
			MachineFrameID: frame.ID,
			GG:             s.GG,
		}
		for _, colour := range s.Colours {
			style.Colours = append(style.Colours, models.StyleColour{ColourName: colour})
		}
		for _, p := range s.Processes {
			style.Processes = append(style.Processes, models.StyleProcess{ProcessName: p.Name, Minutes: p.Minutes})
		}
		if s.SizeRange != "" {
			var sizeRange models.SizeRange
			if err := tx.Preload("Sizes").Where("range_name = ?", s.SizeRange).First(&sizeRange).Error; err != nil {
				return fmt.Errorf("style %s references unknown size range %s", s.StyleCode, s.SizeRange)
			}
			style.SizeRangeID = &sizeRange.ID
			for i, row := range sizeRange.Sizes {
				style.Sizes = append(style.Sizes, models.StyleSize{SizeValue: row.SizeValue, Idx: i})
			}
		}
		if err := tx.Create(&style).Error; err != nil {
			return fmt.Errorf("create style %s: %w", s.StyleCode, err)
		}
	}
	return nil
}

func loadDefaultCalendar(tx *gorm.DB, cal *DefaultCalendar) error {
	if cal == nil {
		return nil
	}
	var count int64
	if err := tx.Model(&models.ShiftAllocation{}).Where("is_default = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	startDate, err := models.ParseDate(cal.StartDate)
	if err != nil {
		return fmt.Errorf("invalid calendar start date: %w", err)
	}
	endDate, err := models.ParseDate(cal.EndDate)
	if err != nil {
		return fmt.Errorf("invalid calendar end date: %w", err)
	}

	allocation := models.ShiftAllocation{
		StartDate: startDate,
		EndDate:   endDate,
		IsDefault: true,
	}
	for _, day := range cal.Weekdays {
		switch day {
		case "sunday":
			allocation.Sunday = true
		case "monday":
			allocation.Monday = true
		case "tuesday":
			allocation.Tuesday = true
		case "wednesday":
			allocation.Wednesday = true
		case "thursday":
			allocation.Thursday = true
		case "friday":
			allocation.Friday = true
		case "saturday":
			allocation.Saturday = true
		default:
			return fmt.Errorf("unknown weekday %q in default calendar", day)
		}
	}
	for i, name := range cal.Shifts {
		var shift models.Shift
		if err := tx.Where("shift_name = ?", name).First(&shift).Error; err != nil {
			return fmt.Errorf("default calendar references unknown shift %s", name)
		}
		allocation.Shifts = append(allocation.Shifts, models.ShiftAssignment{
			ShiftID:         shift.ID,
			ShiftName:       shift.ShiftName,
			DurationMinutes: shift.DurationMinutes,
			Idx:             i,
		})
		allocation.TotalDurationMinutes += shift.DurationMinutes
	}
	return tx.Create(&allocation).Error
}

func generateOrders(tx *gorm.DB, gen *OrderGeneratorIn) error {
	if gen == nil || gen.Count <= 0 {
		return nil
	}

	var existing int64
	if err := tx.Model(&models.Order{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing >= int64(gen.Count) {
		return nil
	}

	var clients []models.Client
	if err := tx.Find(&clients).Error; err != nil {
		return err
	}
	var styles []models.Style
	if err := tx.Preload("Colours").Preload("Sizes").Preload("Processes").Find(&styles).Error; err != nil {
		return err
	}
	if len(clients) == 0 || len(styles) == 0 {
		return fmt.Errorf("cannot generate orders without clients and styles")
	}

	minQty, maxQty := gen.MinQuantity, gen.MaxQuantity
	if minQty <= 0 {
		minQty = 10
	}
	if maxQty < minQty {
		maxQty = minQty + 100
	}

	today := time.Now().Truncate(24 * time.Hour)
	for i := existing; i < int64(gen.Count); i++ {
		client := clients[rand.Intn(len(clients))]
		orderDate := today.AddDate(0, 0, -rand.Intn(30))
		deliveryDate := orderDate.AddDate(0, 0, 14+rand.Intn(31))

		order := models.Order{
			ClientID:      client.ID,
			PurchaseOrder: fmt.Sprintf("PO-%04d", 1000+i),
			OrderDate:     orderDate,
			DeliveryDate:  &deliveryDate,
			Status:        models.OrderStatusOpen,
		}

		picked := pickStyles(styles, 1+rand.Intn(3))
		for _, style := range picked {
			order.Styles = append(order.Styles, models.OrderStyle{StyleCode: style.StyleCode})
			for _, colour := range style.Colours {
				for _, size := range style.Sizes {
					order.Details = append(order.Details, models.OrderDetail{
						StyleCode:    style.StyleCode,
						Colour:       colour.ColourName,
						Size:         size.SizeValue,
						Quantity:     minQty + rand.Intn(maxQty-minQty+1),
						DeliveryDate: &deliveryDate,
					})
				}
			}
			for _, p := range style.Processes {
				order.Processes = append(order.Processes, models.OrderProcess{
					StyleCode:   style.StyleCode,
					ProcessName: p.ProcessName,
					Minutes:     p.Minutes,
				})
			}
		}
		order.TotalQuantity = order.SumDetailQuantity()

		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order %s: %w", order.PurchaseOrder, err)
		}
	}
	return nil
}

func pickStyles(styles []models.Style, n int) []models.Style {
	if n >= len(styles) {
		return styles
	}
	idx := rand.Perm(len(styles))[:n]
	out := make([]models.Style, 0, n)
	for _, i := range idx {
		out = append(out, styles[i])
	}
	return out
}

func firstOrCreate(tx *gorm.DB, row interface{}, query string, args ...interface{}) error {
	return tx.Where(query, args...).FirstOrCreate(row).Error
}
