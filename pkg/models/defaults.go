package models

// DefaultStaff is the built-in demo roster used when a session is created
// without a custom staff list.
func DefaultStaff() []Staff {
	return []Staff{
		{
			ID:         "1",
			Name:       "Alex Johnson",
			Role:       "Manager",
			HourlyRate: 25,
			Skills:     []string{"Management", "FullTime"},
			Avatar:     "https://picsum.photos/150/150?random=1",
		},
		{
			ID:         "2",
			Name:       "Sarah Williams",
			Role:       "Kitchen",
			HourlyRate: 18,
			Skills:     []string{"Cooking", "Prep"},
			Avatar:     "https://picsum.photos/150/150?random=2",
		},
		{
			ID:         "3",
			Name:       "Mike Brown",
			Role:       "Hall",
			HourlyRate: 15,
			Skills:     []string{"Service", "Cleaning"},
			Avatar:     "https://picsum.photos/150/150?random=3",
		},
		{
			ID:         "4",
			Name:       "Emily Davis",
			Role:       "Hall",
			HourlyRate: 15,
			Skills:     []string{"Service", "Cashier", "FullTime"},
			Avatar:     "https://picsum.photos/150/150?random=4",
		},
		{
			ID:         "5",
			Name:       "Chris Wilson",
			Role:       "Kitchen",
			HourlyRate: 19,
			Skills:     []string{"Cooking", "Safety"},
			Avatar:     "https://picsum.photos/150/150?random=5",
		},
	}
}

// DefaultDefinitions returns the built-in shift definitions, in cycle order.
func DefaultDefinitions() []ShiftDefinition {
	return []ShiftDefinition{
		{
			ID:             "MORNING",
			Label:          "AM",
			TimeRange:      "09:00-15:00",
			Hours:          6,
			Color:          "sky",
			RequiredSkills: []string{},
			MinRequired:    1,
			Category:       CategoryWork,
		},
		{
			ID:             "EVENING",
			Label:          "PM",
			TimeRange:      "17:00-23:00",
			Hours:          6,
			Color:          "indigo",
			RequiredSkills: []string{},
			MinRequired:    1,
			Category:       CategoryWork,
		},
		{
			ID:             "FULL",
			Label:          "Full",
			TimeRange:      "09:00-18:00",
			Hours:          9,
			Color:          "teal",
			RequiredSkills: []string{"FullTime"},
			MinRequired:    0,
			Category:       CategoryWork,
		},
		{
			ID:             "HOPE_LEAVE",
			Label:          "Hope",
			TimeRange:      "Request",
			Hours:          0,
			Color:          "pink",
			RequiredSkills: []string{},
			MinRequired:    0,
			Category:       CategoryLeave,
		},
		{
			ID:             "PAID_LEAVE",
			Label:          "Paid",
			TimeRange:      "Day Off",
			Hours:          8, // paid leave counts as a standard day for payroll
			Color:          "emerald",
			RequiredSkills: []string{},
			MinRequired:    0,
			Category:       CategoryLeave,
		},
		{
			ID:             PublicHolidayID,
			Label:          "Off",
			TimeRange:      "Holiday",
			Hours:          0,
			Color:          "gray",
			RequiredSkills: []string{},
			MinRequired:    0,
			Category:       CategoryLeave,
		},
	}
}

// DefaultSettings returns the default global settings
func DefaultSettings() AppSettings {
	return AppSettings{MinStaffPerDay: 3}
}
