package registry

import "github.com/storm-buster/jal-setu/internal/domain"

// riverNetworks maps each region to its major rivers with simplified
// centerline coordinates (lon, lat). Courses are coarse approximations
// adequate for the buffer model; they are not navigation-grade data.
var riverNetworks = map[domain.Region][]domain.RiverSegment{
	domain.RegionBihar: {
		{
			Name: "Ganges",
			Centerline: []domain.Point{
				{Lon: 84.2, Lat: 25.6}, {Lon: 84.5, Lat: 25.5}, {Lon: 85.0, Lat: 25.4},
				{Lon: 85.3, Lat: 25.3}, {Lon: 85.6, Lat: 25.2}, {Lon: 86.0, Lat: 25.1},
				{Lon: 86.3, Lat: 25.0}, {Lon: 86.6, Lat: 24.9}, {Lon: 87.0, Lat: 24.8},
			},
			AvgWidthM:  800.0,
			FloodProne: true,
		},
		{
			Name: "Kosi",
			Centerline: []domain.Point{
				{Lon: 86.8, Lat: 26.5}, {Lon: 86.7, Lat: 26.2}, {Lon: 86.6, Lat: 25.9},
				{Lon: 86.5, Lat: 25.6}, {Lon: 86.4, Lat: 25.3}, {Lon: 86.3, Lat: 25.0},
			},
			AvgWidthM:  400.0,
			FloodProne: true,
		},
		{
			Name: "Gandak",
			Centerline: []domain.Point{
				{Lon: 84.0, Lat: 26.8}, {Lon: 84.2, Lat: 26.5}, {Lon: 84.5, Lat: 26.2},
				{Lon: 84.8, Lat: 25.9}, {Lon: 85.0, Lat: 25.6}, {Lon: 85.2, Lat: 25.3},
			},
			AvgWidthM:  350.0,
			FloodProne: true,
		},
		{
			Name: "Bagmati",
			Centerline: []domain.Point{
				{Lon: 85.5, Lat: 26.5}, {Lon: 85.6, Lat: 26.2}, {Lon: 85.7, Lat: 25.9},
				{Lon: 85.8, Lat: 25.6}, {Lon: 85.9, Lat: 25.3},
			},
			AvgWidthM:  250.0,
			FloodProne: true,
		},
	},
	domain.RegionUttarakhand: {
		{
			Name: "Ganges",
			Centerline: []domain.Point{
				{Lon: 78.2, Lat: 30.1}, {Lon: 78.5, Lat: 30.0}, {Lon: 78.8, Lat: 29.9},
				{Lon: 79.1, Lat: 29.8}, {Lon: 79.4, Lat: 29.7}, {Lon: 79.7, Lat: 29.6},
			},
			AvgWidthM:  600.0,
			FloodProne: true,
		},
		{
			Name: "Yamuna",
			Centerline: []domain.Point{
				{Lon: 78.0, Lat: 30.9}, {Lon: 78.2, Lat: 30.7}, {Lon: 78.4, Lat: 30.5},
				{Lon: 78.6, Lat: 30.3}, {Lon: 78.8, Lat: 30.1}, {Lon: 79.0, Lat: 29.9},
			},
			AvgWidthM:  500.0,
			FloodProne: true,
		},
		{
			Name: "Alaknanda",
			Centerline: []domain.Point{
				{Lon: 79.0, Lat: 30.7}, {Lon: 79.1, Lat: 30.5}, {Lon: 79.2, Lat: 30.3},
				{Lon: 79.3, Lat: 30.1}, {Lon: 79.4, Lat: 29.9},
			},
			AvgWidthM:  300.0,
			FloodProne: true,
		},
		{
			Name: "Bhagirathi",
			Centerline: []domain.Point{
				{Lon: 78.6, Lat: 31.0}, {Lon: 78.7, Lat: 30.8}, {Lon: 78.8, Lat: 30.6},
				{Lon: 78.9, Lat: 30.4}, {Lon: 79.0, Lat: 30.2},
			},
			AvgWidthM:  280.0,
			FloodProne: true,
		},
	},
	domain.RegionJharkhand: {
		{
			Name: "Damodar",
			Centerline: []domain.Point{
				{Lon: 84.5, Lat: 24.0}, {Lon: 84.8, Lat: 23.8}, {Lon: 85.1, Lat: 23.6},
				{Lon: 85.4, Lat: 23.4}, {Lon: 85.7, Lat: 23.2}, {Lon: 86.0, Lat: 23.0},
				{Lon: 86.3, Lat: 22.8},
			},
			AvgWidthM:  450.0,
			FloodProne: true,
		},
		{
			Name: "Subarnarekha",
			Centerline: []domain.Point{
				{Lon: 85.0, Lat: 23.5}, {Lon: 85.3, Lat: 23.3}, {Lon: 85.6, Lat: 23.1},
				{Lon: 85.9, Lat: 22.9}, {Lon: 86.2, Lat: 22.7},
			},
			AvgWidthM:  350.0,
			FloodProne: true,
		},
		{
			Name: "Koel",
			Centerline: []domain.Point{
				{Lon: 84.0, Lat: 23.8}, {Lon: 84.3, Lat: 23.6}, {Lon: 84.6, Lat: 23.4},
				{Lon: 84.9, Lat: 23.2}, {Lon: 85.2, Lat: 23.0},
			},
			AvgWidthM:  300.0,
			FloodProne: true,
		},
	},
	domain.RegionUttarPradesh: {
		{
			Name: "Ganges",
			Centerline: []domain.Point{
				{Lon: 77.5, Lat: 29.5}, {Lon: 78.0, Lat: 29.3}, {Lon: 78.5, Lat: 29.0},
				{Lon: 79.0, Lat: 28.7}, {Lon: 79.5, Lat: 28.4}, {Lon: 80.0, Lat: 28.0},
				{Lon: 80.5, Lat: 27.7}, {Lon: 81.0, Lat: 27.4}, {Lon: 81.5, Lat: 27.0},
				{Lon: 82.0, Lat: 26.7}, {Lon: 82.5, Lat: 26.4}, {Lon: 83.0, Lat: 26.0},
				{Lon: 83.5, Lat: 25.7}, {Lon: 84.0, Lat: 25.4},
			},
			AvgWidthM:  900.0,
			FloodProne: true,
		},
		{
			Name: "Yamuna",
			Centerline: []domain.Point{
				{Lon: 77.2, Lat: 30.4}, {Lon: 77.5, Lat: 30.0}, {Lon: 77.8, Lat: 29.6},
				{Lon: 78.1, Lat: 29.2}, {Lon: 78.4, Lat: 28.8}, {Lon: 78.7, Lat: 28.4},
				{Lon: 79.0, Lat: 28.0}, {Lon: 79.3, Lat: 27.6}, {Lon: 79.6, Lat: 27.2},
			},
			AvgWidthM:  700.0,
			FloodProne: true,
		},
		{
			Name: "Gomti",
			Centerline: []domain.Point{
				{Lon: 80.0, Lat: 28.5}, {Lon: 80.3, Lat: 28.2}, {Lon: 80.6, Lat: 27.9},
				{Lon: 80.9, Lat: 27.6}, {Lon: 81.2, Lat: 27.3}, {Lon: 81.5, Lat: 27.0},
			},
			AvgWidthM:  400.0,
			FloodProne: true,
		},
		{
			Name: "Ghaghra",
			Centerline: []domain.Point{
				{Lon: 81.5, Lat: 27.5}, {Lon: 81.8, Lat: 27.2}, {Lon: 82.1, Lat: 26.9},
				{Lon: 82.4, Lat: 26.6}, {Lon: 82.7, Lat: 26.3}, {Lon: 83.0, Lat: 26.0},
			},
			AvgWidthM:  500.0,
			FloodProne: true,
		},
	},
}

// terrainSlopes holds a representative terrain slope in degrees per
// region. Gangetic plains are nearly flat; Uttarakhand is Himalayan
// foothill terrain, so floods stay close to the channel.
var terrainSlopes = map[domain.Region]float64{
	domain.RegionBihar:        2.0,
	domain.RegionUttarakhand:  12.0,
	domain.RegionJharkhand:    4.5,
	domain.RegionUttarPradesh: 1.8,
}
