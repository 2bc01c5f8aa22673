package models

import (
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var Specialties = []string{
	"General Practitioner",
	"Cardiologist",
	"Dermatologist",
	"Neurologist",
	"Pediatrician",
	"Psychiatrist",
	"Gynecologist",
	"Orthopedist",
}

// SeedCatalogs loads the read-only doctor, resource and symptom catalogs
// on first boot. Tables already holding rows are left untouched.
func SeedCatalogs(db *gorm.DB) {
	seedDoctors(db)
	seedResources(db)
	seedSymptoms(db)
}

func seedDoctors(db *gorm.DB) {
	var count int64
	db.Model(&Doctor{}).Count(&count)
	if count > 0 {
		return
	}

	doctors := []Doctor{
		{Name: "Dr. Sarah Johnson", Specialty: "General Practitioner", Experience: 10, Rating: 4.8,
			AvailableDays: pq.StringArray{"Monday", "Wednesday", "Friday"}, AvailableTime: "09:00-17:00"},
		{Name: "Dr. Robert Williams", Specialty: "General Practitioner", Experience: 15, Rating: 4.9,
			AvailableDays: pq.StringArray{"Tuesday", "Thursday", "Saturday"}, AvailableTime: "09:00-17:00"},
		{Name: "Dr. Emily Davis", Specialty: "General Practitioner", Experience: 8, Rating: 4.7,
			AvailableDays: pq.StringArray{"Monday", "Tuesday", "Friday"}, AvailableTime: "09:00-17:00"},
		{Name: "Dr. Michael Chen", Specialty: "Cardiologist", Experience: 12, Rating: 4.9,
			AvailableDays: pq.StringArray{"Wednesday", "Thursday", "Friday"}, AvailableTime: "09:00-17:00"},
		{Name: "Dr. Jessica Martinez", Specialty: "Cardiologist", Experience: 9, Rating: 4.6,
			AvailableDays: pq.StringArray{"Monday", "Tuesday", "Saturday"}, AvailableTime: "09:00-17:00"},
		{Name: "Dr. Daniel Kim", Specialty: "Dermatologist", Experience: 11, Rating: 4.8,
			AvailableDays: pq.StringArray{"Monday", "Thursday", "Friday"}, AvailableTime: "09:00-17:00"},
		{Name: "Dr. Laura Thompson", Specialty: "Neurologist", Experience: 14, Rating: 4.7,
			AvailableDays: pq.StringArray{"Tuesday", "Wednesday", "Friday"}, AvailableTime: "09:00-17:00"},
		{Name: "Dr. James Patel", Specialty: "Pediatrician", Experience: 7, Rating: 4.9,
			AvailableDays: pq.StringArray{"Monday", "Wednesday", "Thursday"}, AvailableTime: "09:00-17:00"},
		{Name: "Dr. Anna Schmidt", Specialty: "Psychiatrist", Experience: 13, Rating: 4.8,
			AvailableDays: pq.StringArray{"Tuesday", "Thursday", "Friday"}, AvailableTime: "09:00-17:00"},
		{Name: "Dr. Olivia Brown", Specialty: "Gynecologist", Experience: 10, Rating: 4.7,
			AvailableDays: pq.StringArray{"Monday", "Wednesday", "Friday"}, AvailableTime: "09:00-17:00"},
		{Name: "Dr. Steven Garcia", Specialty: "Orthopedist", Experience: 16, Rating: 4.8,
			AvailableDays: pq.StringArray{"Tuesday", "Wednesday", "Saturday"}, AvailableTime: "09:00-17:00"},
	}

	if err := db.Create(&doctors).Error; err != nil {
		log.Println("Failed to seed doctors:", err)
	}
}

func seedResources(db *gorm.DB) {
	var count int64
	db.Model(&Resource{}).Count(&count)
	if count > 0 {
		return
	}

	resources := []Resource{
		{Name: "Community Health Center", Type: "clinic",
			Address: "123 Main St, Anytown, USA", Phone: "(555) 123-4567",
			Website: "https://communityhealthcenter.org",
			Hours:   "Mon-Fri: 8am-5pm, Sat: 9am-1pm", Distance: 1.2,
			Services: pq.StringArray{"Primary Care", "Pediatrics", "Women's Health", "Mental Health"}},
		{Name: "County General Hospital", Type: "hospital",
			Address: "456 Hospital Ave, Anytown, USA", Phone: "(555) 987-6543",
			Website: "https://countygeneralhospital.org",
			Hours:   "24/7", Distance: 3.5,
			Services: pq.StringArray{"Emergency Care", "Surgery", "Radiology", "Laboratory"}},
		{Name: "Neighborhood Pharmacy", Type: "pharmacy",
			Address: "789 Health St, Anytown, USA", Phone: "(555) 456-7890",
			Website: "https://neighborhoodpharmacy.com",
			Hours:   "Mon-Fri: 9am-9pm, Sat-Sun: 10am-6pm", Distance: 0.8,
			Services: pq.StringArray{"Prescription Filling", "Immunizations", "Health Consultations"}},
		{Name: "Mental Health Services", Type: "mental_health",
			Address: "321 Wellness Blvd, Anytown, USA", Phone: "(555) 789-0123",
			Website: "https://mentalhealthservices.org",
			Hours:   "Mon-Fri: 8am-8pm", Distance: 2.3,
			Services: pq.StringArray{"Counseling", "Therapy", "Crisis Intervention"}},
		{Name: "Women's Health Center", Type: "clinic",
			Address: "567 Care Lane, Anytown, USA", Phone: "(555) 234-5678",
			Website: "https://womenshealthcenter.org",
			Hours:   "Mon-Fri: 8:30am-5:30pm", Distance: 4.1,
			Services: pq.StringArray{"OB/GYN", "Mammography", "Family Planning", "Prenatal Care"}},
		{Name: "Urgent Care Clinic", Type: "urgent_care",
			Address: "890 Quick St, Anytown, USA", Phone: "(555) 345-6789",
			Website: "https://urgentcareclinic.com",
			Hours:   "Daily: 8am-10pm", Distance: 1.9,
			Services: pq.StringArray{"Walk-in Care", "X-rays", "Lab Tests", "Minor Procedures"}},
	}

	if err := db.Create(&resources).Error; err != nil {
		log.Println("Failed to seed resources:", err)
	}
}

func seedSymptoms(db *gorm.DB) {
	var count int64
	db.Model(&Symptom{}).Count(&count)
	if count > 0 {
		return
	}

	names := []string{
		"Headache", "Fever", "Cough", "Fatigue", "Shortness of breath",
		"Sore throat", "Nausea", "Dizziness", "Chest pain", "Abdominal pain",
		"Joint pain", "Muscle aches", "Rash", "Vomiting", "Diarrhea",
	}
	symptoms := make([]Symptom, 0, len(names))
	for _, name := range names {
		symptoms = append(symptoms, Symptom{Name: name})
	}

	if err := db.Create(&symptoms).Error; err != nil {
		log.Println("Failed to seed symptoms:", err)
	}
}
