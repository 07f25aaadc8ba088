package service

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"albion-backend/internal/database/models"
	apperrors "albion-backend/internal/errors"
	"albion-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Built-in size maps: size type letter to the 12 size names carried in
// spreadsheet columns J-U, used when the header rows omit their own mapping
var defaultSizeMaps = map[string][]string{
	"X": {"2", "4", "6", "8", "10", "12", "14", "16", "18", "20", "22", "24"},
	"Y": {"32", "34", "36", "38", "40", "42", "44", "46", "48", "50", "52", "54"},
	"Z": {"OOS", "OS", "XXXS", "XXS", "XS", "S", "M", "L", "XL", "XXL", "3XL", "4XL"},
}

// ImportService ingests order spreadsheets: masters are created on first
// sight, orders are created and opened. The whole import runs in a single
// transaction; any failure rolls everything back and marks the job Error.
type ImportService struct {
	db   *gorm.DB
	jobs repository.ImportJobRepositoryInterface
}

// Ensure ImportService implements ImportServiceInterface
var _ ImportServiceInterface = (*ImportService)(nil)

// NewImportService creates a new ImportService
func NewImportService(db *gorm.DB, jobs repository.ImportJobRepositoryInterface) *ImportService {
	return &ImportService{db: db, jobs: jobs}
}

// ImportJobResponse reports an import job's outcome
type ImportJobResponse struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	Status    string    `json:"status"`
	ImportLog string    `json:"import_log"`
}

// importRow is one parsed data row of the spreadsheet
type importRow struct {
	orderDate     string
	client        string
	purchaseOrder string
	styleCode     string
	styleName     string
	machineName   string
	machineFrame  string
	colour        string
	sizeType      string
	deliveryDate  string
	qtyBySize     map[string]int
}

// importOrder is the nested per-purchase-order structure built from rows
type importOrder struct {
	client       string
	orderDate    string
	deliveryDate string
	styleOrder   []string
	styles       map[string]*importStyle
}

type importStyle struct {
	styleName    string
	machineName  string
	machineFrame string
	sizeType     string
	colourOrder  []string
	colours      map[string]map[string]int
}

// ImportOrders parses an order spreadsheet and loads it, tracking progress
// on an ImportJob record
func (s *ImportService) ImportOrders(fileName string, r io.Reader, operator string) (*ImportJobResponse, error) {
	job := &models.ImportJob{
		BaseModel: models.BaseModel{CreatedBy: operator, UpdatedBy: operator},
		FileName:  fileName,
		Status:    models.ImportStatusPending,
	}
	if err := s.jobs.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create import job: %w", err)
	}

	logText, err := s.runImport(r, operator)
	if err != nil {
		job.Status = models.ImportStatusError
		job.ImportLog = err.Error()
	} else {
		job.Status = models.ImportStatusCompleted
		job.ImportLog = logText
	}
	if updateErr := s.jobs.Update(job); updateErr != nil {
		return nil, fmt.Errorf("failed to update import job: %w", updateErr)
	}
	return s.toJobResponse(job), nil
}

// GetJob retrieves an import job by ID
func (s *ImportService) GetJob(id uuid.UUID) (*ImportJobResponse, error) {
	job, err := s.jobs.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrImportJobNotFound
		}
		return nil, fmt.Errorf("failed to get import job: %w", err)
	}
	return s.toJobResponse(job), nil
}

func (s *ImportService) toJobResponse(job *models.ImportJob) *ImportJobResponse {
	return &ImportJobResponse{
		ID:        job.ID,
		FileName:  job.FileName,
		Status:    string(job.Status),
		ImportLog: job.ImportLog,
	}
}

// runImport parses the workbook and loads everything inside one transaction
func (s *ImportService) runImport(r io.Reader, operator string) (string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", apperrors.NewImportError("failed to open workbook: " + err.Error())
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return "", apperrors.NewImportError("failed to read sheet: " + err.Error())
	}
	if len(rows) < 5 {
		return "", apperrors.NewImportError("spreadsheet must have at least 5 rows (3 header, 1 column header, data)")
	}

	sizeMaps := parseSizeMaps(rows[0:3])
	orders, orderKeys := parseDataRows(rows[4:], sizeMaps)
	if len(orderKeys) == 0 {
		return "", apperrors.NewImportError("no order rows found in spreadsheet")
	}

	var logText string
	err = s.db.Transaction(func(tx *gorm.DB) error {
		loader := newImportLoader(tx, operator)
		text, err := loader.load(orders, orderKeys, sizeMaps)
		if err != nil {
			return err
		}
		logText = text
		return nil
	})
	if err != nil {
		return "", err
	}
	return logText, nil
}

/// parseSizeMaps reads rows 1-3: size type letter in column I, the 12 size
// names in columns J-U. Missing letters fall back to the built-in maps.
func parseSizeMaps(headerRows [][]string) map[string][]string {
	sizeMaps := make(map[string][]string)
	for _, row := range headerRows {
		if len(row) < 9 {
			continue
		}
		sizeType := strings.ToUpper(strings.TrimSpace(row[8]))
		if sizeType != "X" && sizeType != "Y" && sizeType != "Z" {
			continue
		}
		sizes := make([]string, 0, 12)
		for col := 9; col < 21; col++ {
			if col < len(row) {
				sizes = append(sizes, strings.TrimSpace(row[col]))
			} else {
				sizes = append(sizes, "")
			}
		}
		sizeMaps[sizeType] = sizes
	}
	for key, builtin := range defaultSizeMaps {
		if _, ok := sizeMaps[key]; !ok {
			sizeMaps[key] = builtin
		}
	}
	return sizeMaps
}

// parseDataRows groups data rows by purchase order, preserving first-seen
// order so the import log is stable
func parseDataRows(dataRows [][]string, sizeMaps map[string][]string) (map[string]*importOrder, []string) {
	orders := make(map[string]*importOrder)
	var orderKeys []string

	for _, row := range dataRows {
		if len(row) < 9 {
			continue
		}
		parsed := importRow{
			orderDate:     strings.TrimSpace(cell(row, 0)),
			client:        strings.TrimSpace(cell(row, 1)),
			purchaseOrder: strings.TrimSpace(cell(row, 2)),
			styleCode:     strings.TrimSpace(cell(row, 3)),
			styleName:     strings.TrimSpace(cell(row, 4)),
			machineName:   strings.TrimSpace(cell(row, 5)),
			machineFrame:  strings.TrimSpace(cell(row, 6)),
			colour:        strings.TrimSpace(cell(row, 7)),
			sizeType:      strings.ToUpper(strings.TrimSpace(cell(row, 8))),
			deliveryDate:  strings.TrimSpace(cell(row, 22)),
		}
		if parsed.purchaseOrder == "" || parsed.styleCode == "" {
			continue
		}

		sizes, ok := sizeMaps[parsed.sizeType]
		if !ok {
			sizes = sizeMaps["X"]
		}
		parsed.qtyBySize = make(map[string]int)
		for i := 0; i < 12; i++ {
			qty := cellInt(row, 9+i)
			if qty > 0 && i < len(sizes) && sizes[i] != "" {
				parsed.qtyBySize[sizes[i]] = qty
			}
		}
		if len(parsed.qtyBySize) == 0 {
			continue
		}

		order, ok := orders[parsed.purchaseOrder]
		if !ok {
			order = &importOrder{
				client:       parsed.client,
				orderDate:    parsed.orderDate,
				deliveryDate: parsed.deliveryDate,
				styles:       make(map[string]*importStyle),
			}
			orders[parsed.purchaseOrder] = order
			orderKeys = append(orderKeys, parsed.purchaseOrder)
		}
		if order.deliveryDate == "" && parsed.deliveryDate != "" {
			order.deliveryDate = parsed.deliveryDate
		}

		style, ok := order.styles[parsed.styleCode]
		if !ok {
			style = &importStyle{
				styleName:    parsed.styleName,
				machineName:  parsed.machineName,
				machineFrame: parsed.machineFrame,
				sizeType:     parsed.sizeType,
				colours:      make(map[string]map[string]int),
			}
			order.styles[parsed.styleCode] = style
			order.styleOrder = append(order.styleOrder, parsed.styleCode)
		}
		if parsed.colour != "" {
			bySize, ok := style.colours[parsed.colour]
			if !ok {
				bySize = make(map[string]int)
				style.colours[parsed.colour] = bySize
				style.colourOrder = append(style.colourOrder, parsed.colour)
			}
			for size, qty := range parsed.qtyBySize {
				bySize[size] = qty
			}
		}
	}
	return orders, orderKeys
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func cellInt(row []string, idx int) int {
	raw := strings.TrimSpace(cell(row, idx))
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}

// parseCellDate accepts the date renderings excelize produces for common
// workbook formats
func parseCellDate(raw string) (time.Time, error) {
	layouts := []string{models.DateFormat, "1/2/06", "01/02/06", "1/2/2006", "01/02/2006", "02-01-2006"}
	for _, layout := range layouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", raw)
}

// importLoader creates masters and orders inside one transaction
type importLoader struct {
	clients    *repository.ClientRepository
	frames     *repository.MachineFrameRepository
	machines   *repository.MachineRepository
	processes  *repository.ProcessRepository
	colours    *repository.ColourRepository
	sizes      *repository.SizeRepository
	sizeRanges *repository.SizeRangeRepository
	styles     *repository.StyleRepository
	orders     *repository.OrderRepository
	operator   string
	created    map[string]int
	existing   map[string]int
}

func newImportLoader(tx *gorm.DB, operator string) *importLoader {
	return &importLoader{
		clients:    repository.NewClientRepository(tx),
		frames:     repository.NewMachineFrameRepository(tx),
		machines:   repository.NewMachineRepository(tx),
		processes:  repository.NewProcessRepository(tx),
		colours:    repository.NewColourRepository(tx),
		sizes:      repository.NewSizeRepository(tx),
		sizeRanges: repository.NewSizeRangeRepository(tx),
		styles:     repository.NewStyleRepository(tx),
		orders:     repository.NewOrderRepository(tx),
		operator:   operator,
		created:    make(map[string]int),
		existing:   make(map[string]int),
	}
}

func (l *importLoader) load(orders map[string]*importOrder, orderKeys []string, sizeMaps map[string][]string) (string, error) {
	clientIDs := make(map[string]uuid.UUID)
	frameIDs := make(map[string]uuid.UUID)

	for _, po := range orderKeys {
		order := orders[po]
		if order.client == "" {
			return "", apperrors.NewImportError("order " + po + " has no client")
		}
		if _, ok := clientIDs[order.client]; !ok {
			id, err := l.getOrCreateClient(order.client)
			if err != nil {
				return "", err
			}
			clientIDs[order.client] = id
		}

		for _, code := range order.styleOrder {
			style := order.styles[code]

			frameName := "-"
			if style.machineFrame != "" {
				frameName = style.machineFrame
				if frameName != "-" {
					frameName = strings.ToUpper(frameName)
				}
			}
			frameID, ok := frameIDs[frameName]
			if !ok {
				var err error
				frameID, err = l.getOrCreateFrame(frameName)
				if err != nil {
					return "", err
				}
				frameIDs[frameName] = frameID
			}

			// Machines named "-" are placeholders, not real machines
			if style.machineName != "" && style.machineName != "-" && frameName != "-" {
				machineCode := style.machineName + "-" + frameName
				if err := l.getOrCreateMachine(machineCode, style.machineName, frameID); err != nil {
					return "", err
				}
			}

			if err := l.ensureColoursAndSizes(style); err != nil {
				return "", err
			}
			if err := l.getOrCreateStyle(code, style, frameID, sizeMaps); err != nil {
				return "", err
			}
		}
	}

	if err := l.getOrCreateProcess("Knitting"); err != nil {
		return "", err
	}

	for _, po := range orderKeys {
		if err := l.createOrder(po, orders[po], clientIDs[orders[po].client], sizeMaps); err != nil {
			return "", err
		}
	}

	return l.summary(), nil
}

func (l *importLoader) getOrCreateClient(name string) (uuid.UUID, error) {
	client, err := l.clients.GetByName(name)
	if err == nil {
		l.existing["client"]++
		return client.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}
	client = &models.Client{
		BaseModel:  models.BaseModel{CreatedBy: l.operator},
		ClientName: name,
	}
	if err := l.clients.Create(client); err != nil {
		return uuid.Nil, err
	}
	l.created["client"]++
	return client.ID, nil
}

func (l *importLoader) getOrCreateFrame(name string) (uuid.UUID, error) {
	frame, err := l.frames.GetByName(name)
	if err == nil {
		l.existing["machine frame"]++
		return frame.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}
	frame = &models.MachineFrame{
		BaseModel: models.BaseModel{CreatedBy: l.operator},
		FrameName: name,
	}
	if err := l.frames.Create(frame); err != nil {
		return uuid.Nil, err
	}
	l.created["machine frame"]++
	return frame.ID, nil
}

func (l *importLoader) getOrCreateMachine(code, name string, frameID uuid.UUID) error {
	_, err := l.machines.GetByMachineID(code)
	if err == nil {
		l.existing["machine"]++
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	machine := &models.Machine{
		BaseModel:      models.BaseModel{CreatedBy: l.operator},
		MachineID:      code,
		MachineName:    name,
		MachineFrameID: frameID,
	}
	if err := l.machines.Create(machine); err != nil {
		return err
	}
	l.created["machine"]++
	return nil
}

func (l *importLoader) getOrCreateProcess(name string) error {
	_, err := l.processes.GetByName(name)
	if err == nil {
		l.existing["process"]++
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	process := &models.Process{
		BaseModel:   models.BaseModel{CreatedBy: l.operator},
		ProcessName: name,
	}
	if err := l.processes.Create(process); err != nil {
		return err
	}
	l.created["process"]++
	return nil
}

func (l *importLoader) ensureColoursAndSizes(style *importStyle) error {
	for _, colour := range style.colourOrder {
		_, err := l.colours.GetByName(colour)
		if err == nil {
			l.existing["colour"]++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := l.colours.Create(&models.Colour{
			BaseModel:  models.BaseModel{CreatedBy: l.operator},
			ColourName: colour,
		}); err != nil {
			return err
		}
		l.created["colour"]++
	}

	seen := make(map[string]bool)
	for _, bySize := range style.colours {
		for size := range bySize {
			if seen[size] {
				continue
			}
			seen[size] = true
			_, err := l.sizes.GetByValue(size)
			if err == nil {
				l.existing["size"]++
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := l.sizes.Create(&models.Size{
				BaseModel: models.BaseModel{CreatedBy: l.operator},
				SizeValue: size,
			}); err != nil {
				return err
			}
			l.created["size"]++
		}
	}
	return nil
}

// getOrCreateStyle builds the style with a per-style size range. Sizes keep
// their spreadsheet column order; existing styles gain newly seen colours.
func (l *importLoader) getOrCreateStyle(code string, data *importStyle, frameID uuid.UUID, sizeMaps map[string][]string) error {
	sizeOrder := sizeMaps[data.sizeType]
	if sizeOrder == nil {
		sizeOrder = sizeMaps["X"]
	}
	position := make(map[string]int, len(sizeOrder))
	for i, s := range sizeOrder {
		position[s] = i
	}
	sizeSet := make(map[string]bool)
	for _, bySize := range data.colours {
		for size := range bySize {
			sizeSet[size] = true
		}
	}
	sizeList := make([]string, 0, len(sizeSet))
	for size := range sizeSet {
		sizeList = append(sizeList, size)
	}
	sort.Slice(sizeList, func(i, j int) bool {
		pi, ok := position[sizeList[i]]
		if !ok {
			pi = len(sizeOrder)
		}
		pj, ok := position[sizeList[j]]
		if !ok {
			pj = len(sizeOrder)
		}
		return pi < pj
	})

	rangeName := "SR-" + code
	sizeRange, err := l.sizeRanges.GetByName(rangeName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if sizeRange != nil {
		l.existing["size range"]++
		known := make(map[string]bool)
		maxIdx := -1
		for _, row := range sizeRange.Sizes {
			known[row.SizeValue] = true
			if row.Idx > maxIdx {
				maxIdx = row.Idx
			}
		}
		changed := false
		for _, s := range sizeList {
			if !known[s] {
				maxIdx++
				sizeRange.Sizes = append(sizeRange.Sizes, models.SizeRangeSize{SizeValue: s, Idx: maxIdx})
				changed = true
			}
		}
		if changed {
			if err := l.sizeRanges.Update(sizeRange); err != nil {
				return err
			}
		}
	} else {
		sizeRange = &models.SizeRange{
			BaseModel: models.BaseModel{CreatedBy: l.operator},
			RangeName: rangeName,
		}
		for i, s := range sizeList {
			sizeRange.Sizes = append(sizeRange.Sizes, models.SizeRangeSize{SizeValue: s, Idx: i})
		}
		if err := l.sizeRanges.Create(sizeRange); err != nil {
			return err
		}
		l.created["size range"]++
	}

	style, err := l.styles.GetByCode(code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if style != nil {
		l.existing["style"]++
		known := make(map[string]bool)
		for _, c := range style.Colours {
			known[c.ColourName] = true
		}
		changed := false
		for _, c := range data.colourOrder {
			if !known[c] {
				style.Colours = append(style.Colours, models.StyleColour{StyleID: style.ID, ColourName: c})
				changed = true
			}
		}
		if changed {
			return l.styles.Update(style)
		}
		return nil
	}

	styleName := data.styleName
	if styleName == "" {
		styleName = code
	}
	style = &models.Style{
		BaseModel:      models.BaseModel{CreatedBy: l.operator},
		StyleCode:      code,
		StyleName:      styleName,
		MachineFrameID: frameID,
		SizeRangeID:    &sizeRange.ID,
	}
	for _, c := range data.colourOrder {
		style.Colours = append(style.Colours, models.StyleColour{ColourName: c})
	}
	for i, s := range sizeList {
		style.Sizes = append(style.Sizes, models.StyleSize{SizeValue: s, Idx: i})
	}
	style.Processes = []models.StyleProcess{{
		ProcessName: "Knitting",
		Minutes:     float64(5 + rand.Intn(10)),
	}}
	if err := l.styles.Create(style); err != nil {
		return err
	}
	l.created["style"]++
	return nil
}

// createOrder creates the order already opened, with the process snapshot
// taken from the style masters. Detail rows follow the spreadsheet's colour
// and size column order.
func (l *importLoader) createOrder(po string, data *importOrder, clientID uuid.UUID, sizeMaps map[string][]string) error {
	order := &models.Order{
		BaseModel:     models.BaseModel{CreatedBy: l.operator},
		ClientID:      clientID,
		PurchaseOrder: po,
		Status:        models.OrderStatusOpen,
	}

	if data.orderDate != "" {
		d, err := parseCellDate(data.orderDate)
		if err != nil {
			return apperrors.NewImportError("order " + po + ": " + err.Error())
		}
		order.OrderDate = d
	} else {
		order.OrderDate = time.Now().Truncate(24 * time.Hour)
	}
	var deliveryDate *time.Time
	if data.deliveryDate != "" {
		d, err := parseCellDate(data.deliveryDate)
		if err != nil {
			return apperrors.NewImportError("order " + po + ": " + err.Error())
		}
		deliveryDate = &d
		order.DeliveryDate = &d
	}

	for _, code := range data.styleOrder {
		order.Styles = append(order.Styles, models.OrderStyle{StyleCode: code})

		style, err := l.styles.GetByCode(code)
		if err != nil {
			return err
		}
		for _, proc := range style.Processes {
			order.Processes = append(order.Processes, models.OrderProcess{
				StyleCode:   code,
				ProcessName: proc.ProcessName,
				Minutes:     proc.Minutes,
			})
		}

		styleData := data.styles[code]
		sizeOrder := sizeMaps[styleData.sizeType]
		if sizeOrder == nil {
			sizeOrder = sizeMaps["X"]
		}
		order.Details = append(order.Details, styleDetailRows(code, styleData, sizeOrder, deliveryDate)...)
	}
	order.TotalQuantity = order.SumDetailQuantity()

	if err := l.orders.Create(order); err != nil {
		return err
	}
	l.created["order"]++
	return nil
}

// styleDetailRows builds the matrix cells for one style, colours in
// first-seen row order and sizes in the sheet's column order
func styleDetailRows(code string, data *importStyle, sizeOrder []string, deliveryDate *time.Time) []models.OrderDetail {
	var details []models.OrderDetail
	for _, colour := range data.colourOrder {
		bySize := data.colours[colour]
		for _, size := range sizeOrder {
			qty := bySize[size]
			if qty <= 0 {
				continue
			}
			details = append(details, models.OrderDetail{
				StyleCode:    code,
				Colour:       colour,
				Size:         size,
				Quantity:     qty,
				DeliveryDate: deliveryDate,
			})
		}
	}
	return details
}

func (l *importLoader) summary() string {
	entities := []string{
		"client", "machine frame", "machine", "process",
		"colour", "size", "size range", "style", "order",
	}
	lines := make([]string, 0, len(entities))
	for _, e := range entities {
		lines = append(lines, fmt.Sprintf("%s: %d created, %d existing", e, l.created[e], l.existing[e]))
	}
	return strings.Join(lines, "\n")
}
