// README: Built-in Wasalny catalog (Damietta, Cairo, Alexandria and Red Sea trips).
package catalog

func fares(sedan, sedanRT, suv, suvRT, family, familyRT, minibus, minibusRT float64) map[VehicleCategory]Fare {
	return map[VehicleCategory]Fare{
		VehicleSedan:         {OneWay: sedan, RoundTrip: sedanRT},
		VehicleSUV:           {OneWay: suv, RoundTrip: suvRT},
		VehicleFamilyCruiser: {OneWay: family, RoundTrip: familyRT},
		VehicleMinibus:       {OneWay: minibus, RoundTrip: minibusRT},
	}
}

func at(lat, lng float64) *Point {
	return &Point{Lat: lat, Lng: lng}
}

func damiettaArea() []string {
	return []string{"damietta-city", "new-damietta", "damietta-port", "ras-elbar"}
}

// DefaultData returns a fresh copy of the built-in catalog data.
func DefaultData() Data {
	return Data{
		Locations: []Location{
			{ID: "damietta-city", Name: "Damietta City", NameAr: "مدينة دمياط", Coordinates: at(31.4165, 31.8133)},
			{ID: "damietta-port", Name: "Damietta Port", NameAr: "ميناء دمياط", Coordinates: at(31.4700, 31.7600)},
			{ID: "new-damietta", Name: "New Damietta", NameAr: "دمياط الجديدة", Coordinates: at(31.4400, 31.6800)},
			{ID: "ras-elbar", Name: "Ras El Bar", NameAr: "رأس البر", Coordinates: at(31.5100, 31.8200)},
			{ID: "cairo-downtown", Name: "Cairo Downtown", NameAr: "وسط القاهرة", Type: RouteTypeTravel, Coordinates: at(30.0444, 31.2357)},
			{ID: "cairo-airport", Name: "Cairo Airport", NameAr: "مطار القاهرة الدولي", Type: RouteTypeTravel, Coordinates: at(30.1219, 31.4056)},
			{ID: "nasr-city", Name: "Nasr City", NameAr: "مدينة نصر", Type: RouteTypeTravel, Coordinates: at(30.0561, 31.3301)},
			{ID: "heliopolis", Name: "Heliopolis", NameAr: "مصر الجديدة", Type: RouteTypeTravel, Coordinates: at(30.0911, 31.3225)},
			{ID: "new-cairo", Name: "New Cairo", NameAr: "القاهرة الجديدة", Type: RouteTypeTravel, Coordinates: at(30.0300, 31.4700)},
			{ID: "6th-october", Name: "6th of October", NameAr: "السادس من أكتوبر", Type: RouteTypeTravel, Coordinates: at(29.9285, 30.9188)},
			{ID: "giza", Name: "Giza", NameAr: "الجيزة", Type: RouteTypeTravel, Coordinates: at(30.0131, 31.2089)},
			{ID: "alex-downtown", Name: "Alexandria Downtown", NameAr: "وسط الإسكندرية", Type: RouteTypeTravel, Coordinates: at(31.2001, 29.9187)},
			{ID: "ezbet-elborg", Name: "Ezbet El Borg", NameAr: "عزبة البرج", Type: RouteTypeInternal, Coordinates: at(31.5036, 31.8417)},
			{ID: "faraskour", Name: "Faraskour", NameAr: "فارسكور", Type: RouteTypeInternal, Coordinates: at(31.3297, 31.7150)},
			{ID: "kafr-saad", Name: "Kafr Saad", NameAr: "كفر سعد", Type: RouteTypeInternal, Coordinates: at(31.3550, 31.6850)},
			{ID: "maadi", Name: "Maadi", NameAr: "المعادي", Type: RouteTypeTravel, Coordinates: at(29.9602, 31.2569)},
			{ID: "zamalek", Name: "Zamalek", NameAr: "الزمالك", Type: RouteTypeTravel, Coordinates: at(30.0609, 31.2194)},
			{ID: "mohandessin", Name: "Mohandessin", NameAr: "المهندسين", Type: RouteTypeTravel, Coordinates: at(30.0550, 31.2000)},
			{ID: "sharm", Name: "Sharm El Sheikh", NameAr: "شرم الشيخ", Type: RouteTypeTravel, Coordinates: at(27.9158, 34.3300)},
			{ID: "hurghada", Name: "Hurghada", NameAr: "الغردقة", Type: RouteTypeTravel, Coordinates: at(27.2579, 33.8116)},
		},
		RouteGroups: []RouteGroup{
			{
				ID: "travel-cairo", Type: RouteTypeTravel, NameAr: "دمياط - القاهرة",
				FromLocations: damiettaArea(),
				ToLocations:   []string{"cairo-downtown", "nasr-city", "heliopolis", "maadi", "zamalek", "mohandessin", "giza"},
				Bidirectional: true,
				Pricing:       fares(1600, 2600, 2000, 3300, 2500, 4200, 3500, 6000),
			},
			{
				ID: "travel-new-cairo", Type: RouteTypeTravel, NameAr: "دمياط - القاهرة الجديدة وأكتوبر",
				FromLocations: damiettaArea(),
				ToLocations:   []string{"new-cairo", "6th-october"},
				Bidirectional: true,
				Pricing:       fares(1800, 3000, 2250, 3700, 2800, 4600, 3900, 6500),
			},
			{
				ID: "travel-airport", Type: RouteTypeTravel, NameAr: "دمياط - مطار القاهرة",
				FromLocations: damiettaArea(),
				ToLocations:   []string{"cairo-airport"},
				Bidirectional: true,
				Pricing:       fares(1700, 2800, 2100, 3500, 2700, 4400, 3700, 6200),
			},
			{
				ID: "travel-alexandria", Type: RouteTypeTravel, NameAr: "دمياط - الإسكندرية",
				FromLocations: damiettaArea(),
				ToLocations:   []string{"alex-downtown"},
				Bidirectional: true,
				Pricing:       fares(1900, 3100, 2400, 3900, 3000, 4900, 4200, 7000),
			},
			{
				ID: "travel-sharm", Type: RouteTypeTravel, NameAr: "دمياط - شرم الشيخ",
				FromLocations: damiettaArea(),
				ToLocations:   []string{"sharm"},
				Bidirectional: true,
				Pricing:       fares(7000, 12500, 8750, 15500, 11000, 19500, 15000, 27000),
			},
			{
				ID: "travel-hurghada", Type: RouteTypeTravel, NameAr: "دمياط - الغردقة",
				FromLocations: damiettaArea(),
				ToLocations:   []string{"hurghada"},
				Bidirectional: true,
				Pricing:       fares(6400, 11500, 8000, 14500, 10200, 18000, 14000, 25000),
			},
			{
				ID: "internal-damietta", Type: RouteTypeInternal, NameAr: "داخل محافظة دمياط",
				FromLocations: []string{"damietta-city", "new-damietta", "damietta-port"},
				ToLocations:   []string{"ras-elbar", "ezbet-elborg", "faraskour", "kafr-saad"},
				Bidirectional: true,
				Pricing:       fares(150, 250, 200, 330, 250, 420, 350, 600),
			},
		},
		Routes: []Route{
			{ID: "damietta-cairo", From: "damietta-city", To: "cairo-downtown", DistanceKm: 200, DurationMinutes: 150, BasePriceEGP: 800, NameAr: "دمياط - القاهرة"},
			{ID: "damietta-airport", From: "damietta-city", To: "cairo-airport", DistanceKm: 180, DurationMinutes: 140, BasePriceEGP: 850, NameAr: "دمياط - مطار القاهرة"},
			{ID: "damietta-nasr", From: "damietta-city", To: "nasr-city", DistanceKm: 190, DurationMinutes: 145, BasePriceEGP: 820, NameAr: "دمياط - مدينة نصر"},
			{ID: "damietta-newcairo", From: "damietta-city", To: "new-cairo", DistanceKm: 210, DurationMinutes: 160, BasePriceEGP: 870, NameAr: "دمياط - القاهرة الجديدة"},
			{ID: "damietta-6october", From: "damietta-city", To: "6th-october", DistanceKm: 230, DurationMinutes: 175, BasePriceEGP: 920, NameAr: "دمياط - السادس من أكتوبر"},
			{ID: "rasalbar-cairo", From: "ras-elbar", To: "cairo-downtown", DistanceKm: 215, DurationMinutes: 160, BasePriceEGP: 850, NameAr: "رأس البر - القاهرة"},
			{ID: "newdamietta-cairo", From: "new-damietta", To: "cairo-downtown", DistanceKm: 205, DurationMinutes: 155, BasePriceEGP: 820, NameAr: "دمياط الجديدة - القاهرة"},
			{ID: "damietta-alex", From: "damietta-city", To: "alex-downtown", DistanceKm: 250, DurationMinutes: 190, BasePriceEGP: 950, NameAr: "دمياط - الإسكندرية"},
			{ID: "damietta-ezbet", From: "damietta-city", To: "ezbet-elborg", DistanceKm: 15, DurationMinutes: 25, BasePriceEGP: 150, NameAr: "دمياط - عزبة البرج"},
			{ID: "damietta-faraskour", From: "damietta-city", To: "faraskour", DistanceKm: 20, DurationMinutes: 30, BasePriceEGP: 180, NameAr: "دمياط - فارسكور"},
			{ID: "damietta-maadi", From: "damietta-city", To: "maadi", DistanceKm: 215, DurationMinutes: 170, BasePriceEGP: 880, NameAr: "دمياط - المعادي"},
			{ID: "damietta-zamalek", From: "damietta-city", To: "zamalek", DistanceKm: 205, DurationMinutes: 160, BasePriceEGP: 850, NameAr: "دمياط - الزمالك"},
			{ID: "damietta-mohandessin", From: "damietta-city", To: "mohandessin", DistanceKm: 210, DurationMinutes: 165, BasePriceEGP: 860, NameAr: "دمياط - المهندسين"},
			{ID: "damietta-sharm", From: "damietta-city", To: "sharm", DistanceKm: 550, DurationMinutes: 480, BasePriceEGP: 3500, NameAr: "دمياط - شرم الشيخ"},
			{ID: "damietta-hurghada", From: "damietta-city", To: "hurghada", DistanceKm: 500, DurationMinutes: 420, BasePriceEGP: 3200, NameAr: "دمياط - الغردقة"},
			{ID: "cairo-damietta", From: "cairo-downtown", To: "damietta-city", DistanceKm: 200, DurationMinutes: 150, BasePriceEGP: 800, NameAr: "القاهرة - دمياط"},
			{ID: "airport-damietta", From: "cairo-airport", To: "damietta-city", DistanceKm: 180, DurationMinutes: 140, BasePriceEGP: 850, NameAr: "مطار القاهرة - دمياط"},
			{ID: "nasr-damietta", From: "nasr-city", To: "damietta-city", DistanceKm: 190, DurationMinutes: 145, BasePriceEGP: 820, NameAr: "مدينة نصر - دمياط"},
			{ID: "newcairo-damietta", From: "new-cairo", To: "damietta-city", DistanceKm: 210, DurationMinutes: 160, BasePriceEGP: 870, NameAr: "القاهرة الجديدة - دمياط"},
			{ID: "6october-damietta", From: "6th-october", To: "damietta-city", DistanceKm: 230, DurationMinutes: 175, BasePriceEGP: 920, NameAr: "السادس من أكتوبر - دمياط"},
			{ID: "alex-damietta", From: "alex-downtown", To: "damietta-city", DistanceKm: 250, DurationMinutes: 190, BasePriceEGP: 950, NameAr: "الإسكندرية - دمياط"},
			{ID: "maadi-damietta", From: "maadi", To: "damietta-city", DistanceKm: 215, DurationMinutes: 170, BasePriceEGP: 880, NameAr: "المعادي - دمياط"},
			{ID: "zamalek-damietta", From: "zamalek", To: "damietta-city", DistanceKm: 205, DurationMinutes: 160, BasePriceEGP: 850, NameAr: "الزمالك - دمياط"},
			{ID: "mohandessin-damietta", From: "mohandessin", To: "damietta-city", DistanceKm: 210, DurationMinutes: 165, BasePriceEGP: 860, NameAr: "المهندسين - دمياط"},
			{ID: "sharm-damietta", From: "sharm", To: "damietta-city", DistanceKm: 550, DurationMinutes: 480, BasePriceEGP: 3500, NameAr: "شرم الشيخ - دمياط"},
			{ID: "hurghada-damietta", From: "hurghada", To: "damietta-city", DistanceKm: 500, DurationMinutes: 420, BasePriceEGP: 3200, NameAr: "الغردقة - دمياط"},
		},
		Vehicles: []VehiclePricing{
			{Category: VehicleSedan, CategoryAr: "سيدان", MinPassengers: 1, MaxPassengers: 4, BaseMultiplier: 1.0},
			{Category: VehicleSUV, CategoryAr: "دفع رباعي", MinPassengers: 1, MaxPassengers: 4, BaseMultiplier: 1.25},
			{Category: VehicleFamilyCruiser, CategoryAr: "عائلية", MinPassengers: 1, MaxPassengers: 7, BaseMultiplier: 1.6, PricePerExtraPassenger: 50},
			{Category: VehicleMinibus, CategoryAr: "ميني باص", MinPassengers: 1, MaxPassengers: 13, BaseMultiplier: 2.2, PricePerExtraPassenger: 70},
		},
		TimeSlots: []TimeSlot{
			{ID: "morning", NameAr: "صباحاً (6 ص - 12 ظ)", StartHour: 6, EndHour: 12, Multiplier: 1.0},
			{ID: "afternoon", NameAr: "ظهراً (12 ظ - 6 م)", StartHour: 12, EndHour: 18, Multiplier: 1.0},
			{ID: "evening", NameAr: "مساءً (6 م - 12 ص)", StartHour: 18, EndHour: 24, Multiplier: 1.15},
			{ID: "night", NameAr: "ليلاً (12 ص - 6 ص)", StartHour: 0, EndHour: 6, Multiplier: 1.3},
		},
		DayTypes: []DayType{
			{ID: DayWeekday, NameAr: "أيام العمل", Multiplier: 1.0},
			{ID: DayWeekend, NameAr: "عطلة نهاية الأسبوع", Multiplier: 1.1},
			{ID: DayHoliday, NameAr: "عطلة رسمية", Multiplier: 1.25},
		},
		Holidays: Holidays{
			Fixed: []MonthDay{
				{Month: 1, Day: 7},   // Coptic Christmas
				{Month: 1, Day: 25},  // January 25 Revolution
				{Month: 4, Day: 25},  // Sinai Liberation Day
				{Month: 5, Day: 1},   // Labour Day
				{Month: 6, Day: 30},  // June 30 Revolution
				{Month: 7, Day: 23},  // July 23 Revolution
				{Month: 10, Day: 6},  // Armed Forces Day
			},
			// Lunar and moveable feasts, refreshed yearly.
			Variable: []string{
				"2025-03-31", "2025-04-01", "2025-04-21", "2025-06-06", "2025-06-07", "2025-06-27", "2025-09-05",
				"2026-03-20", "2026-04-13", "2026-05-27",
			},
		},
		Services: []AdditionalService{
			{ID: "child-seat", NameAr: "مقعد أطفال", Description: "مقعد أطفال آمن ومعتمد", Price: 50, MaxQuantity: 2},
			{ID: "extra-luggage", NameAr: "أمتعة إضافية", Description: "لحقائب إضافية كبيرة الحجم", Price: 100, MaxQuantity: 5},
			{ID: "waiting-time", NameAr: "وقت انتظار (ساعة)", Description: "انتظار السائق لمدة ساعة إضافية", Price: 80, MaxQuantity: 10},
			{ID: "stop-over", NameAr: "توقف في الطريق", Description: "توقف واحد لمدة 15 دقيقة", Price: 50, MaxQuantity: 3},
		},
		Discounts: []DiscountRule{
			{
				ID: "round-trip", NameAr: "خصم العودة", Description: "خصم 15% عند حجز رحلة ذهاب وعودة",
				Type: DiscountPercentage, Value: 15, IsStackable: true,
				Conditions: DiscountConditions{RoundTrip: true},
			},
			{
				ID: "early-booking", NameAr: "حجز مبكر", Description: "خصم 10% للحجز قبل 5 أيام",
				Type: DiscountPercentage, Value: 10, MaxAmount: 200, IsStackable: true,
				Conditions: DiscountConditions{AdvanceBookingDays: 5},
			},
			{
				ID: "group-discount", NameAr: "خصم المجموعات", Description: "خصم 150 جنيه للمجموعات 6+ أشخاص",
				Type: DiscountFixed, Value: 150, IsStackable: true,
				Conditions: DiscountConditions{MinPassengers: 6},
			},
		},
		Settings: Settings{
			Currency:                "EGP",
			CurrencyAr:              "جنيه",
			BasePassengers:          4,
			MinimumBookingHours:     2,
			MaxAdvanceBookingDays:   60,
			RoundTripReturnMinHours: 4,
			WhatsAppNumber:          "201090400030",
			ContactEmail:            "booking@wasalny.com",
			WeekendDays:             []int{5, 6},
		},
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return MustNew(DefaultData())
}
