// Package refdata loads the static district/upazila reference files that
// every address form and search query validates against. The data is
// embedded and read-only; it has no lifecycle.
package refdata

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed districts.json upazilas.json
var assetsFS embed.FS

// District is one administrative district.
type District struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Upazila is one sub-district, always belonging to exactly one district.
type Upazila struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DistrictID string `json:"district_id"`
}

// Store holds the loaded reference data with lookup indexes.
type Store struct {
	districts []District
	upazilas  []Upazila

	districtByName     map[string]District
	upazilasByDistrict map[string][]Upazila
}

// Load parses the embedded assets and builds the indexes.
func Load() (*Store, error) {
	var dfile struct {
		Districts []District `json:"districts"`
	}
	raw, err := assetsFS.ReadFile("districts.json")
	if err != nil {
		return nil, fmt.Errorf("read districts.json: %w", err)
	}
	if err := json.Unmarshal(raw, &dfile); err != nil {
		return nil, fmt.Errorf("parse districts.json: %w", err)
	}

	var ufile struct {
		Upazilas []Upazila `json:"upazilas"`
	}
	raw, err = assetsFS.ReadFile("upazilas.json")
	if err != nil {
		return nil, fmt.Errorf("read upazilas.json: %w", err)
	}
	if err := json.Unmarshal(raw, &ufile); err != nil {
		return nil, fmt.Errorf("parse upazilas.json: %w", err)
	}

	s := &Store{
		districts:          dfile.Districts,
		upazilas:           ufile.Upazilas,
		districtByName:     make(map[string]District, len(dfile.Districts)),
		upazilasByDistrict: make(map[string][]Upazila),
	}
	for _, d := range dfile.Districts {
		s.districtByName[d.Name] = d
	}
	for _, u := range ufile.Upazilas {
		s.upazilasByDistrict[u.DistrictID] = append(s.upazilasByDistrict[u.DistrictID], u)
	}

	// every upazila must point at a known district
	known := make(map[string]bool, len(dfile.Districts))
	for _, d := range dfile.Districts {
		known[d.ID] = true
	}
	for _, u := range ufile.Upazilas {
		if !known[u.DistrictID] {
			return nil, fmt.Errorf("upazila %q references unknown district id %q", u.Name, u.DistrictID)
		}
	}

	return s, nil
}

// Districts returns all districts.
func (s *Store) Districts() []District {
	return s.districts
}

// UpazilasOf returns the upazilas of the named district. Choices are always
// constrained to the selected district; an unknown district yields an empty
// slice.
func (s *Store) UpazilasOf(districtName string) []Upazila {
	d, ok := s.districtByName[districtName]
	if !ok {
		return nil
	}
	return s.upazilasByDistrict[d.ID]
}

// ValidDistrict reports whether the name is a known district.
func (s *Store) ValidDistrict(name string) bool {
	_, ok := s.districtByName[name]
	return ok
}

// ValidUpazila reports whether the upazila belongs to the named district.
func (s *Store) ValidUpazila(districtName, upazilaName string) bool {
	for _, u := range s.UpazilasOf(districtName) {
		if u.Name == upazilaName {
			return true
		}
	}
	return false
}

// RawDistricts returns the embedded districts.json bytes for static serving.
func RawDistricts() ([]byte, error) {
	return assetsFS.ReadFile("districts.json")
}

// RawUpazilas returns the embedded upazilas.json bytes for static serving.
func RawUpazilas() ([]byte, error) {
	return assetsFS.ReadFile("upazilas.json")
}
