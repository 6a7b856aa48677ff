package catalog

import (
	"fmt"

	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/storage"
)

// SeedRecords is the equipment every new session starts with.
var SeedRecords = []models.EquipmentRecord{
	{ID: "0401", Name: "Titan-950 Ultra Hauler", Branch: "Melbourne Branch", Bookmarked: true},
	{ID: "0303", Name: "Wheel Loader", Branch: "Melbourne Branch"},
	{ID: "0309", Name: "Diesel Tanker", Branch: "Melbourne Branch"},
	{ID: "0322", Name: "Excavator", Branch: "Melbourne Branch"},
	{ID: "0405", Name: "Bulldozer D8T", Branch: "Sydney Branch"},
	{ID: "0406", Name: "Crane Mobile 200T", Branch: "Brisbane Branch", Bookmarked: true},
	{ID: "0407", Name: "Forklift 5T Hyster", Branch: "Perth Branch"},
	{ID: "0408", Name: "Backhoe Loader JCB", Branch: "Adelaide Branch"},
	{ID: "0409", Name: "Compactor Road Roller", Branch: "Melbourne Branch"},
	{ID: "0410", Name: "Concrete Mixer Truck", Branch: "Sydney Branch"},
	{ID: "0411", Name: "Dump Truck 40T", Branch: "Brisbane Branch", Bookmarked: true},
	{ID: "0412", Name: "Grader Motor", Branch: "Perth Branch"},
	{ID: "0413", Name: "Skid Steer Loader", Branch: "Adelaide Branch"},
	{ID: "0414", Name: "Trencher Chain", Branch: "Melbourne Branch"},
	{ID: "0415", Name: "Articulated Hauler", Branch: "Sydney Branch"},
	{ID: "0416", Name: "Telehandler 15T", Branch: "Brisbane Branch", Bookmarked: true},
	{ID: "0417", Name: "Mini Excavator", Branch: "Perth Branch"},
	{ID: "0418", Name: "Paver Asphalt", Branch: "Adelaide Branch"},
	{ID: "0419", Name: "Drilling Rig", Branch: "Melbourne Branch"},
	{ID: "0420", Name: "Scissor Lift Platform", Branch: "Sydney Branch"},
}

// Seed writes SeedRecords into an empty store. A store that already holds
// equipment is left alone.
func Seed(store storage.Provider) error {
	existing, err := store.GetAllEquipment()
	if err != nil {
		return fmt.Errorf("failed to read equipment: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	return store.SaveEquipment(SeedRecords...)
}
