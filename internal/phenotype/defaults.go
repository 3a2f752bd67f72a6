package phenotype

// Engine default values for a freshly initialized agent type.
const (
	DefaultRadius              = 8.412710547954228
	DefaultAdhesionStrength    = 0.4
	DefaultRepulsionStrength   = 10.0
	DefaultBMRepulsionStrength = 100.0
	DefaultMigrationSpeed      = 1.0
	DefaultPersistenceTime     = 1.0
	DefaultMigrationBias       = 0.5
	DefaultApoptosisRate       = 5.31667e-05
	DefaultNecrosisRate        = 0.0
	DefaultSaturationDensity   = 1.0
	DefaultChemotaxisDirection = 1
)

// Defaults returns the engine's default template, type 0, synced against d.
func Defaults(d Densities) *Template {
	cycle, _ := StandardCycle(CycleLive)
	t := &Template{
		Type: 0,
		Name: "default",
		Phenotype: Phenotype{
			Motility: Motility{
				MigrationSpeed:  DefaultMigrationSpeed,
				PersistenceTime: DefaultPersistenceTime,
				MigrationBias:   DefaultMigrationBias,
				Chemotaxis:      Chemotaxis{Direction: DefaultChemotaxisDirection},
			},
			Mechanics: Mechanics{
				CellCellAdhesionStrength:  DefaultAdhesionStrength,
				CellCellRepulsionStrength: DefaultRepulsionStrength,
				CellBMRepulsionStrength:   DefaultBMRepulsionStrength,
			},
			Geometry: Geometry{Radius: DefaultRadius},
			Cycle:    cycle,
			Death: Death{Models: []DeathModel{
				{Name: DeathApoptosis, Rate: DefaultApoptosisRate},
				{Name: DeathNecrosis, Rate: DefaultNecrosisRate},
			}},
		},
		Functions: Functions{CycleModel: CycleLive},
	}
	t.Phenotype.Secretion.SyncToMicroenvironment(d)
	for i := range t.Phenotype.Secretion.SaturationDensities {
		t.Phenotype.Secretion.SaturationDensities[i] = DefaultSaturationDensity
	}
	t.Phenotype.Molecular.SyncToMicroenvironment(d)
	return t
}
