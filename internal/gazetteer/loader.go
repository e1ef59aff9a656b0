package gazetteer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/addresspin/internal/geo"
)

// Source produces a full set of landmarks. Reloads are wholesale: the
// store rebuilds its snapshot from whatever the source returns.
type Source interface {
	Load(ctx context.Context) ([]Landmark, error)
}

// StaticSource serves a fixed landmark slice. Used for the built-in
// seed set and in tests.
type StaticSource []Landmark

func (s StaticSource) Load(_ context.Context) ([]Landmark, error) {
	return []Landmark(s), nil
}

// FileSource loads landmarks from a CSV or JSON file, detected by
// extension. A directory path looks for landmarks.csv inside it.
type FileSource struct {
	Path string
}

func (f FileSource) Load(_ context.Context) ([]Landmark, error) {
	path := f.Path

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat landmarks path: %w", err)
	}
	if info.IsDir() {
		path = filepath.Join(path, "landmarks.csv")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(path)
	default:
		return loadCSV(path)
	}
}

// loadCSV reads the landmarks.csv schema:
// name,category,city,lat,lng,pincode,aliases
// with aliases as a semicolon-separated list. Malformed rows are
// skipped rather than failing the whole load.
func loadCSV(path string) ([]Landmark, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open landmarks csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"name", "city", "lat", "lng"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("landmarks csv missing column %q", required)
		}
	}

	var landmarks []Landmark
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		get := func(name string) string {
			idx, ok := col[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		lat, latErr := strconv.ParseFloat(get("lat"), 64)
		lng, lngErr := strconv.ParseFloat(get("lng"), 64)
		name := get("name")
		if name == "" || latErr != nil || lngErr != nil {
			continue
		}

		lm := Landmark{
			Name:     name,
			Category: strings.ToLower(get("category")),
			City:     strings.ToLower(get("city")),
			Lat:      lat,
			Lng:      lng,
			Pincode:  get("pincode"),
		}
		if aliases := get("aliases"); aliases != "" {
			for _, a := range strings.Split(aliases, ";") {
				if a = strings.TrimSpace(a); a != "" {
					lm.Aliases = append(lm.Aliases, a)
				}
			}
		}

		landmarks = append(landmarks, lm)
	}

	return landmarks, nil
}

func loadJSON(path string) ([]Landmark, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read landmarks json: %w", err)
	}

	var landmarks []Landmark
	if err := json.Unmarshal(data, &landmarks); err != nil {
		return nil, fmt.Errorf("parse landmarks json: %w", err)
	}
	return landmarks, nil
}

// LoadLocalityAliases reads locality_aliases.csv
// (variant_name,standardized_name,city) into a city-keyed lookup map.
// Both city and variant keys are lowercased.
func LoadLocalityAliases(path string) (map[string]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open locality aliases: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("read aliases header: %w", err)
	}

	aliases := make(map[string]map[string]string)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read aliases row: %w", err)
		}
		if len(row) < 3 {
			continue
		}

		variant := strings.ToLower(strings.TrimSpace(row[0]))
		standard := strings.TrimSpace(row[1])
		city := strings.ToLower(strings.TrimSpace(row[2]))
		if variant == "" || standard == "" {
			continue
		}

		if aliases[city] == nil {
			aliases[city] = make(map[string]string)
		}
		aliases[city][variant] = standard
	}

	return aliases, nil
}

// LoadDeliveryHistory reads delivery_history.csv
// (raw_address,latitude,longitude,delivery_status,city) and feeds the
// successful deliveries into the density index. Returns the number of
// records indexed.
func LoadDeliveryHistory(path string, index *geo.DensityIndex) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open delivery history: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read delivery header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	latIdx, latOK := col["latitude"]
	lngIdx, lngOK := col["longitude"]
	statusIdx, statusOK := col["delivery_status"]
	if !latOK || !lngOK {
		return 0, fmt.Errorf("delivery history missing coordinate columns")
	}

	indexed := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return indexed, fmt.Errorf("read delivery row: %w", err)
		}
		if latIdx >= len(row) || lngIdx >= len(row) {
			continue
		}

		if statusOK && statusIdx < len(row) {
			if strings.ToLower(strings.TrimSpace(row[statusIdx])) != "success" {
				continue
			}
		}

		lat, latErr := strconv.ParseFloat(strings.TrimSpace(row[latIdx]), 64)
		lng, lngErr := strconv.ParseFloat(strings.TrimSpace(row[lngIdx]), 64)
		if latErr != nil || lngErr != nil {
			continue
		}

		if err := index.Add(lat, lng); err != nil {
			continue
		}
		indexed++
	}

	return indexed, nil
}
