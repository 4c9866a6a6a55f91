package propulsion

// Built-in engine catalog. Thrust is vacuum thrust in kN, mass is the engine
// hardware alone, burn time is the rated single-burn duration.
var (
	Bell8048 = Engine{
		Name:        "Bell 8048 (XLR81-BA-5, Agena A)",
		Consumption: []FuelRate{{UDMH, 8.8115}, {IRFNAIII, 10.7262}},
		Isp:         276,
		Thrust:      67,
		Mass:        132,
		BurnTime:    120,
	}

	Bell8081 = Engine{
		Name:        "Bell 8081 (XLR81-BA-7, Agena B)",
		Consumption: []FuelRate{{UDMH, 8.9903}, {IRFNAIII, 11.0327}},
		Isp:         285,
		Thrust:      71,
		Mass:        132,
		BurnTime:    240,
	}

	Bell8096 = Engine{
		Name:        "Bell 8096 (XLR81-BA-13, Gemini ATV)",
		Consumption: []FuelRate{{UDMH, 8.8049}, {IRFNAIII, 10.8052}},
		Isp:         291,
		Thrust:      71,
		Mass:        132,
		BurnTime:    240,
	}

	LR43NA5 = Engine{
		Name:        "LR43-NA-5",
		Consumption: []FuelRate{{LiquidOxygen, 49.3816}, {Kerosene, 30.5239}},
		Isp:         301,
		Thrust:      240.2,
		Mass:        844,
		BurnTime:    330,
	}

	LR105NA3 = Engine{
		Name:        "LR105-NA-3",
		Consumption: []FuelRate{{LiquidOxygen, 70.5326}, {Kerosene, 43.5978}},
		Isp:         309,
		Thrust:      352.2,
		Mass:        844,
		BurnTime:    330,
	}

	LR105NA5 = Engine{
		Name:        "LR105-NA-5",
		Consumption: []FuelRate{{LiquidOxygen, 72.3793}, {Kerosene, 44.7393}},
		Isp:         313,
		Thrust:      366.1,
		Mass:        758,
		BurnTime:    350,
	}

	LR105NA6 = Engine{
		Name:        "LR105-NA-6",
		Consumption: []FuelRate{{LiquidOxygen, 73.7830}, {Kerosene, 45.6070}},
		Isp:         313,
		Thrust:      373.2,
		Mass:        758,
		BurnTime:    350,
	}

	LR105NA71 = Engine{
		Name:        "LR105-NA-7.1",
		Consumption: []FuelRate{{LiquidOxygen, 75.4324}, {Kerosene, 46.6265}},
		Isp:         316,
		Thrust:      385.2,
		Mass:        862,
		BurnTime:    350,
	}

	LR101NA3 = Engine{
		Name:        "LR101-NA-3 Vernier",
		Consumption: []FuelRate{{LiquidOxygen, 1.3296}, {Kerosene, 0.8222}},
		Isp:         238,
		Thrust:      4.448,
		Mass:        24,
		BurnTime:    360,
	}

	LR101NA11 = Engine{
		Name:        "LR101-NA-11 Vernier",
		Consumption: []FuelRate{{LiquidOxygen, 1.3153}, {Kerosene, 0.8512}},
		Isp:         249,
		Thrust:      5.369,
		Mass:        24,
		BurnTime:    360,
	}

	LR43NA3 = Engine{
		Name:        "LR43-NA-3",
		Consumption: []FuelRate{{LiquidOxygen, 148.5149}, {Kerosene, 91.8005}},
		Isp:         278,
		Thrust:      667.2,
		Mass:        720,
		BurnTime:    135,
	}

	LR89NA3 = Engine{
		Name:        "LR89-NA-3",
		Consumption: []FuelRate{{LiquidOxygen, 166.4868}, {Kerosene, 102.9093}},
		Isp:         282,
		Thrust:      758.7,
		Mass:        641,
		BurnTime:    135,
	}

	LR89NA5 = Engine{
		Name:        "LR89-NA-5",
		Consumption: []FuelRate{{LiquidOxygen, 177.4070}, {Kerosene, 109.6594}},
		Isp:         290,
		Thrust:      831.4,
		Mass:        828,
		BurnTime:    150,
	}

	LR89NA6 = Engine{
		Name:        "LR89-NA-6",
		Consumption: []FuelRate{{LiquidOxygen, 180.6504}, {Kerosene, 111.6642}},
		Isp:         290,
		Thrust:      846.6,
		Mass:        883,
		BurnTime:    160,
	}

	LR89NA71 = Engine{
		Name:        "LR89-NA-7.1",
		Consumption: []FuelRate{{LiquidOxygen, 197.3125}, {Kerosene, 121.9634}},
		Isp:         292.2,
		Thrust:      931.7,
		Mass:        1018,
		BurnTime:    165,
	}

	LR79NA9 = Engine{
		Name:        "LR79-NA-9",
		Consumption: []FuelRate{{LiquidOxygen, 166.2447}, {Kerosene, 107.5894}},
		Isp:         284,
		Thrust:      774,
		Mass:        934,
		BurnTime:    165,
	}

	LR79NA11 = Engine{
		Name:        "LR79-NA-11",
		Consumption: []FuelRate{{LiquidOxygen, 181.1651}, {Kerosene, 117.2455}},
		Isp:         286.2,
		Thrust:      850,
		Mass:        980,
		BurnTime:    165,
	}

	AJ1042 = Engine{
		Name:        "AJ10-42",
		Consumption: []FuelRate{{UDMH, 4.1946}, {IRFNAIII, 6.1370}},
		Isp:         267,
		Thrust:      33,
		Mass:        80,
		BurnTime:    150,
	}

	AJ10142 = Engine{
		Name:        "AJ10-142",
		Consumption: []FuelRate{{UDMH, 4.3052}, {IWFNA, 6.2987}},
		Isp:         270,
		Thrust:      30.444,
		Mass:        80,
		BurnTime:    150,
	}

	AJ10104 = Engine{
		Name:        "AJ10-104",
		Consumption: []FuelRate{{UDMH, 4.2831}, {IRFNAIII, 5.7219}},
		Isp:         278,
		Thrust:      35.1,
		Mass:        90,
		BurnTime:    300,
	}

	BabySergeant = Engine{
		Name:        "Baby Sergeant",
		Consumption: []FuelRate{{PSPC, 1.9950}},
		Isp:         235,
		Thrust:      8,
		Mass:        5.670,
		BurnTime:    6.345,
	}

	HydrazineThruster = Engine{
		Name:        "1kN Thruster",
		Consumption: []FuelRate{{Hydrazine, 0.4911}},
		Isp:         198,
		Thrust:      0.957,
		Mass:        16,
		BurnTime:    20 * 60,
	}

	CaveaThruster = Engine{
		Name:        "2.2/3.6kN Thruster",
		Consumption: []FuelRate{{CaveaB, 0.7786}},
		Isp:         258.225,
		Thrust:      2.959,
		Mass:        34,
		BurnTime:    20 * 60,
	}

	Thruster1 = Engine{
		Name:        "1kN Thruster",
		Consumption: []FuelRate{{Aerozine50, 0.3022}, {NTO, 0.2998}},
		Isp:         262.625,
		Thrust:      1.82,
		Mass:        15,
		BurnTime:    20 * 60,
	}

	Thruster2 = Engine{
		Name:        "2.2/3.6kN Thruster",
		Consumption: []FuelRate{{Aerozine50, 0.5634}, {NTO, 0.5589}},
		Isp:         281.725,
		Thrust:      3.64,
		Mass:        32,
		BurnTime:    20 * 60,
	}

	Altair = Engine{
		Name:        "Altair",
		Consumption: []FuelRate{{PSPC, 3.4339}},
		Isp:         256,
		Thrust:      15,
		Mass:        30,
		BurnTime:    34.8,
	}

	Castor1 = Engine{
		Name:        "Castor 1",
		Consumption: []FuelRate{{HTPB, 66.7076}},
		Isp:         247,
		Thrust:      268.632,
		Mass:        535,
		BurnTime:    28.1,
	}

	H1 = Engine{
		Name:        "H1 Saturn I",
		Consumption: []FuelRate{{Kerosene, 126.1482}, {LiquidOxygen, 202.1917}},
		Isp:         289,
		Thrust:      947,
		Mass:        635,
		BurnTime:    150,
	}

	H1B = Engine{
		Name:        "H1 Saturn IB",
		Consumption: []FuelRate{{Kerosene, 133.9858}, {LiquidOxygen, 214.7539}},
		Isp:         296,
		Thrust:      1030.2,
		Mass:        988,
		BurnTime:    180,
	}

	RL10A1 = Engine{
		Name:        "RL10A-1",
		Consumption: []FuelRate{{LiquidHydrogen, 38.0877}, {LiquidOxygen, 11.8241}},
		Isp:         422,
		Thrust:      67,
		Mass:        145,
		BurnTime:    430,
	}

	RL10A31 = Engine{
		Name:        "RL10A-3-1",
		Consumption: []FuelRate{{LiquidHydrogen, 37.1201}, {LiquidOxygen, 11.5237}},
		Isp:         433,
		Thrust:      67,
		Mass:        139,
		BurnTime:    470,
	}

	RL10A33 = Engine{
		Name:        "RL10A-3-3",
		Consumption: []FuelRate{{LiquidHydrogen, 36.2004}, {LiquidOxygen, 11.2382}},
		Isp:         444,
		Thrust:      67,
		Mass:        137,
		BurnTime:    470,
	}

	J2 = Engine{
		Name:        "J-2-200klbf",
		Consumption: []FuelRate{{LiquidHydrogen, 464.3834}, {LiquidOxygen, 158.6155}},
		Isp:         424,
		Thrust:      889.325,
		Mass:        1610,
		BurnTime:    350,
	}
)
