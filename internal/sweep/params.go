package sweep

func init() {
	Register(Param{
		Name:         "breed_time",
		Description:  "Steps a fish must survive before it can breed",
		Apply:        func(s *Scenario, v float64) { s.Params.BreedTime = int(v) },
		DefaultRange: fixed(1, 15, 1),
	})
	Register(Param{
		Name:         "energy_gain",
		Description:  "Energy a shark gains from eating a fish",
		Apply:        func(s *Scenario, v float64) { s.Params.EnergyGain = int(v) },
		DefaultRange: fixed(2, 18, 1),
	})
	Register(Param{
		Name:        "breed_energy",
		Description: "Energy a shark must exceed before it can breed",
		Apply:       func(s *Scenario, v float64) { s.Params.BreedEnergy = int(v) },
		DefaultRange: func(s Scenario) Range {
			return Range{From: float64(s.Params.StartEnergy + 1), To: 25, Step: 1}
		},
	})
	Register(Param{
		Name:        "start_energy",
		Description: "Energy a newborn shark starts with",
		Apply:       func(s *Scenario, v float64) { s.Params.StartEnergy = int(v) },
		DefaultRange: func(s Scenario) Range {
			return Range{From: 1, To: float64(s.Params.BreedEnergy - 2), Step: 1}
		},
	})
	Register(Param{
		Name:         "initial_fish",
		Description:  "Number of fish placed at the start",
		Apply:        func(s *Scenario, v float64) { s.Setup.InitialFish = int(v) },
		DefaultRange: fixed(200, 1000, 50),
	})
	Register(Param{
		Name:         "initial_sharks",
		Description:  "Number of sharks placed at the start",
		Apply:        func(s *Scenario, v float64) { s.Setup.InitialSharks = int(v) },
		DefaultRange: fixed(200, 1000, 50),
	})
	Register(Param{
		Name:        "side_length",
		Description: "Grid rows; columns follow the aspect ratio",
		Apply: func(s *Scenario, v float64) {
			s.Setup.Rows = int(v)
			s.Setup.Cols = int(v * s.AspectRatio)
		},
		DefaultRange: fixed(40, 120, 10),
	})
	Register(Param{
		Name:        "aspect_ratio",
		Description: "Columns per row; rows stay fixed",
		Apply: func(s *Scenario, v float64) {
			s.AspectRatio = v
			s.Setup.Cols = int(float64(s.Setup.Rows) * v)
		},
		DefaultRange: fixed(1, 2, 0.125),
	})
}

func fixed(from, to, step float64) func(Scenario) Range {
	return func(Scenario) Range {
		return Range{From: from, To: to, Step: step}
	}
}
