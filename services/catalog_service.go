package services

import (
	"errors"

	"temple-backend/models"
)

var ErrCatalogItemNotFound = errors.New("catalog item not found")

// The seva and hall catalogs are fixed, externally supplied data. Costs stay
// as published display strings; the booking pipeline parses them on demand.
var sevas = []models.Seva{
	{ID: 1, Name: "Panchamrutha Abhisheka", Description: "Sacred bathing ceremony with panchamrutha (five sacred items)", Time: "Morning (6:00 AM - 8:00 AM)", Cost: "₹100", Duration: "2 hours", Category: "Daily Sevas"},
	{ID: 2, Name: "Saamoohika Satyanarayana Pooje Sankalpa", Description: "Group Satyanarayana pooja ceremony with sankalpa", Time: "Evening (5:00 PM - 7:00 PM)", Cost: "₹100", Duration: "2 hours", Category: "Weekly Sevas"},
	{ID: 3, Name: "Tirtha Prasada (Dwadashi Parane)", Description: "Sacred food offering on Dwadashi day", Time: "Afternoon (12:00 PM - 2:00 PM)", Cost: "₹100", Duration: "2 hours", Category: "Special Sevas"},
	{ID: 4, Name: "Panchamrutha Abhisheka (Thursday)", Description: "Special Panchamrutha Abhisheka on Thursday", Time: "Morning (6:00 AM - 8:00 AM)", Cost: "₹150", Duration: "2 hours", Category: "Weekly Sevas"},
	{ID: 5, Name: "Tirtha Prasada (One Person)", Description: "Individual sacred food offering", Time: "Afternoon (12:00 PM - 1:00 PM)", Cost: "₹250", Duration: "1 hour", Category: "Daily Sevas"},
	{ID: 6, Name: "Vehicle Pooja 2 Wheeler", Description: "Vehicle blessing ceremony for two-wheelers", Time: "Morning (8:00 AM - 9:00 AM)", Cost: "₹300", Duration: "1 hour", Category: "Special Sevas"},
	{ID: 7, Name: "Gow Graasa 1 Day", Description: "One day cow feeding service", Time: "Morning (6:00 AM - 7:00 PM)", Cost: "₹300", Duration: "Full day", Category: "Daily Sevas"},
	{ID: 8, Name: "Dhanvantari Homa Sankalpa", Description: "Fire ritual for health with sankalpa", Time: "Morning (7:00 AM - 9:00 AM)", Cost: "₹300", Duration: "2 hours", Category: "Special Sevas"},
	{ID: 9, Name: "Durga Deepa Namaskaara - Sankalpa", Description: "Durga lamp worship with sankalpa", Time: "Evening (6:00 PM - 7:00 PM)", Cost: "₹301", Duration: "1 hour", Category: "Special Sevas"},
	{ID: 10, Name: "Gow Puje", Description: "Cow worship ceremony", Time: "Morning (6:00 AM - 7:00 AM)", Cost: "₹500", Duration: "1 hour", Category: "Daily Sevas"},
	{ID: 11, Name: "Rajatha Kavacha", Description: "Silver armor offering ceremony", Time: "Morning (8:00 AM - 10:00 AM)", Cost: "₹500", Duration: "2 hours", Category: "Special Sevas"},
	{ID: 12, Name: "Vehicle Pooja -4 Wheeler", Description: "Vehicle blessing ceremony for four-wheelers", Time: "Morning (9:00 AM - 10:00 AM)", Cost: "₹500", Duration: "1 hour", Category: "Special Sevas"},
	{ID: 13, Name: "Pallakki or Ratha Utsava (Thursday Only)", Description: "Palanquin or chariot festival on Thursday", Time: "Evening (6:00 PM - 8:00 PM)", Cost: "₹700", Duration: "2 hours", Category: "Weekly Sevas"},
	{ID: 14, Name: "Swarna Kavacha", Description: "Golden armor offering ceremony", Time: "Morning (8:00 AM - 11:00 AM)", Cost: "₹700", Duration: "3 hours", Category: "Special Sevas"},
	{ID: 15, Name: "Sankalpa Shraaddha (2 TP)", Description: "Ancestral rites with sankalpa for two people", Time: "Morning (9:00 AM - 12:00 PM)", Cost: "₹750", Duration: "3 hours", Category: "Special Sevas"},
	{ID: 16, Name: "Chataka Shraaddha (2 TP)", Description: "Chataka ancestral rites for two people", Time: "Morning (9:00 AM - 1:00 PM)", Cost: "₹900", Duration: "4 hours", Category: "Special Sevas"},
	{ID: 17, Name: "Heavy Vehicle Pooja", Description: "Vehicle blessing for heavy vehicles", Time: "Morning (8:00 AM - 10:00 AM)", Cost: "₹1000", Duration: "2 hours", Category: "Special Sevas"},
	{ID: 18, Name: "Achaarya Mukhena Sankalpa Shraddha", Description: "Ancestral rites performed by Acharya with sankalpa", Time: "Morning (8:00 AM - 2:00 PM)", Cost: "₹1,750", Duration: "6 hours", Category: "Special Sevas"},
	{ID: 19, Name: "Pratyeka Satyanarayana Pooje - Purnima day (2TP)", Description: "Individual Satyanarayana pooja on Purnima day for two people", Time: "Full Day (9:00 AM - 6:00 PM)", Cost: "₹2,000", Duration: "9 hours", Category: "Special Sevas"},
	{ID: 20, Name: "Pratyeka Dhanvantari Homa - Thursdays (2 TP)", Description: "Individual Dhanvantari fire ritual on Thursdays for two people", Time: "Morning (7:00 AM - 11:00 AM)", Cost: "₹2,000", Duration: "4 hours", Category: "Weekly Sevas"},
	{ID: 21, Name: "Kankaabhisheka", Description: "Eye abhisheka ceremony", Time: "Morning (8:00 AM - 10:00 AM)", Cost: "₹2,000", Duration: "2 hours", Category: "Special Sevas"},
	{ID: 22, Name: "Achaarya Mukhena Chataka Shraaddha", Description: "Chataka ancestral rites performed by Acharya", Time: "Morning (8:00 AM - 3:00 PM)", Cost: "₹2,900", Duration: "7 hours", Category: "Special Sevas"},
	{ID: 23, Name: "Prathekya Chataka Shraaddha", Description: "Individual Chataka ancestral rites", Time: "Morning (9:00 AM - 4:00 PM)", Cost: "₹2,900", Duration: "7 hours", Category: "Special Sevas"},
	{ID: 24, Name: "Thulabhara Seve (Prahaladha Rajaru)", Description: "Tulabhara ceremony in honor of Prahaladha Rajaru", Time: "Morning (8:00 AM - 12:00 PM)", Cost: "₹3,000", Duration: "4 hours", Category: "Special Sevas"},
	{ID: 25, Name: "Sampoorna Alankaara Seve", Description: "Complete decoration ceremony", Time: "Morning (6:00 AM - 12:00 PM)", Cost: "₹3,000", Duration: "6 hours", Category: "Special Sevas"},
	{ID: 26, Name: "Durga Deepa Namaskaara - Pratyeka", Description: "Individual Durga lamp worship ceremony", Time: "Evening (6:00 PM - 8:00 PM)", Cost: "₹4,000", Duration: "2 hours", Category: "Special Sevas"},
	{ID: 27, Name: "Pratyeka Satyanarayana Pooje Other days (2 TP)", Description: "Individual Satyanarayana pooja on other days for two people", Time: "Full Day (9:00 AM - 6:00 PM)", Cost: "₹4,000", Duration: "9 hours", Category: "Special Sevas"},
	{ID: 28, Name: "Pratyeka Dhanvantari Homa Other days (2 TP)", Description: "Individual Dhanvantari fire ritual on other days for two people", Time: "Morning (7:00 AM - 11:00 AM)", Cost: "₹4,000", Duration: "4 hours", Category: "Special Sevas"},
	{ID: 29, Name: "Evening Prasada Seva (Thursdays & Special Days)", Description: "Evening food offering service on Thursdays and special days", Time: "Evening (6:00 PM - 8:00 PM)", Cost: "₹4,000", Duration: "2 hours", Category: "Weekly Sevas"},
	{ID: 30, Name: "Srinivasa Kalyana", Description: "Divine marriage ceremony of Lord Srinivasa", Time: "Full Day (8:00 AM - 8:00 PM)", Cost: "₹5,000", Duration: "12 hours", Category: "Special Sevas"},
	{ID: 31, Name: "Sarva Seve", Description: "Complete all sevas package", Time: "Full Day (6:00 AM - 8:00 PM)", Cost: "₹5,000", Duration: "14 hours", Category: "Special Sevas"},
	{ID: 32, Name: "Madhu Abhisheka (48 Days)", Description: "Honey abhisheka ceremony for 48 consecutive days", Time: "Daily (6:00 AM - 7:00 AM)", Cost: "₹5,400", Duration: "48 days", Category: "Extended Sevas"},
	{ID: 33, Name: "Pratyeka Satyanarayana Pooje At Home (2 TP)", Description: "Individual Satyanarayana pooja at home for two people", Time: "Flexible timing", Cost: "₹6,000", Duration: "3 hours", Category: "Special Sevas"},
	{ID: 34, Name: "Gow Graasa 1 Month", Description: "One month cow feeding service", Time: "Daily (6:00 AM - 7:00 PM)", Cost: "₹9,000", Duration: "1 month", Category: "Extended Sevas"},
	{ID: 35, Name: "Gow Daana (10 TP)", Description: "Cow donation ceremony for ten people", Time: "Morning (8:00 AM - 12:00 PM)", Cost: "₹20,000", Duration: "4 hours", Category: "Special Sevas"},
	{ID: 36, Name: "Nutana Vastra Samarpane", Description: "New clothes offering ceremony", Time: "Morning (9:00 AM - 11:00 AM)", Cost: "Contact Office", Duration: "2 hours", Category: "Special Sevas"},
	{ID: 37, Name: "Pratyeka Svayamvara Parvathi Homa", Description: "Individual Svayamvara Parvathi fire ritual", Time: "Morning (7:00 AM - 11:00 AM)", Cost: "Contact Office", Duration: "4 hours", Category: "Special Sevas"},
	{ID: 38, Name: "Any other seva", Description: "Custom seva as per devotee requirement", Time: "Flexible timing", Cost: "Contact Office", Duration: "Variable", Category: "Special Sevas"},
}

var halls = []models.Hall{
	{ID: 1, Name: "Main Prayer Hall", Description: "Primary worship space with traditional architecture", Capacity: "200 people", Cost: "₹5,000", Features: []string{"Traditional Architecture", "Air Conditioning", "Audio System", "Stage", "Decorative Lighting"}, Category: "Prayer Halls"},
	{ID: 2, Name: "Abhisheka Hall", Description: "Dedicated space for abhisheka ceremonies", Capacity: "100 people", Cost: "₹3,000", Features: []string{"Marble Flooring", "Drainage System", "Sacred Water Supply", "Altar Space", "Seating Arrangement"}, Category: "Ceremony Halls"},
	{ID: 3, Name: "Homa Hall", Description: "Fire ritual hall with proper ventilation", Capacity: "50 people", Cost: "₹2,500", Features: []string{"Fire Safety System", "Ventilation", "Sacred Fire Pit", "Smoke Extraction", "Traditional Design"}, Category: "Ceremony Halls"},
	{ID: 4, Name: "Annadana Hall", Description: "Dining hall for food offerings and meals", Capacity: "150 people", Cost: "₹2,000", Features: []string{"Kitchen Facility", "Dining Tables", "Serving Area", "Cleaning Area", "Storage Space"}, Category: "Dining Halls"},
	{ID: 5, Name: "Community Hall", Description: "Multi-purpose hall for events and gatherings", Capacity: "300 people", Cost: "₹4,000", Features: []string{"Flexible Seating", "Projector", "Sound System", "Stage", "Parking Space"}, Category: "Event Halls"},
}

func Sevas() []models.Seva {
	out := make([]models.Seva, len(sevas))
	copy(out, sevas)
	return out
}

func Halls() []models.Hall {
	out := make([]models.Hall, len(halls))
	copy(out, halls)
	return out
}

func FindSeva(id int) (*models.Seva, error) {
	for i := range sevas {
		if sevas[i].ID == id {
			s := sevas[i]
			return &s, nil
		}
	}
	return nil, ErrCatalogItemNotFound
}

func FindSevaByName(name string) (*models.Seva, error) {
	for i := range sevas {
		if sevas[i].Name == name {
			s := sevas[i]
			return &s, nil
		}
	}
	return nil, ErrCatalogItemNotFound
}

func FindHall(id int) (*models.Hall, error) {
	for i := range halls {
		if halls[i].ID == id {
			h := halls[i]
			return &h, nil
		}
	}
	return nil, ErrCatalogItemNotFound
}

func FindHallByName(name string) (*models.Hall, error) {
	for i := range halls {
		if halls[i].Name == name {
			h := halls[i]
			return &h, nil
		}
	}
	return nil, ErrCatalogItemNotFound
}
