package propulsion

// Built-in fuels. Densities are in kg per volume unit of the engine consumption rates.
var (
	Kerosene     = Fuel{Name: "Kerosene", Density: 0.82}
	LiquidOxygen = Fuel{Name: "LqdOxygen", Density: 1.141}

	UDMH     = Fuel{Name: "UDMH", Density: 0.791}
	IRFNAIII = Fuel{Name: "IRFNA-III", Density: 1.658}
	IWFNA    = Fuel{Name: "IWFNA", Density: 1.513}

	LiquidHydrogen = Fuel{Name: "Liquid Hydrogen", Density: 0.07085}

	PSPC = Fuel{Name: "PSPC", Density: 1.74}
	HTPB = Fuel{Name: "HTPB", Density: 1.77}

	Hydrazine  = Fuel{Name: "Hydrazine", Density: 1.004}
	CaveaB     = Fuel{Name: "Cavea-B", Density: 1.501}
	Aerozine50 = Fuel{Name: "Aerozine50", Density: 0.9}
	NTO        = Fuel{Name: "NTO", Density: 1.45}
)
