package catalog

import "careercompass/internal/model"

var (
	afterClass10 = []model.ClassLevel{model.Class10}
	afterClass12 = []model.ClassLevel{model.Class12}
	eitherClass  = []model.ClassLevel{model.Class10, model.Class12}
)

// DefaultCourses returns the built-in course catalog in declaration order
func DefaultCourses() []model.Course {
	return []model.Course{
		{
			ID:            "btech_cse",
			Name:          "B.Tech Computer Science",
			FullName:      "Bachelor of Technology in Computer Science and Engineering",
			Stream:        model.StreamScience,
			Duration:      "4 years",
			Eligibility:   "Class 12 with Physics, Chemistry and Mathematics",
			EntranceExams: []string{"JEE Main", "JEE Advanced", "BITSAT"},
			Salary:        model.SalaryBand{Average: "8 LPA", Top: "40 LPA"},
			Demand:        model.TierHigh,
			Difficulty:    model.TierHigh,
			Skills:        []string{"Programming", "Problem solving", "Mathematics"},
			Careers:       []string{"Software engineer", "Data scientist", "Security analyst"},
			TopColleges:   []string{"IIT Bombay", "IIT Delhi", "BITS Pilani"},
			Profile:       model.Weights{inv: 0.9, rea: 0.4, con: 0.4},
			ClassLevels:   afterClass12,
			MinMarks:      75,
		},
		{
			ID:            "btech_mech",
			Name:          "B.Tech Mechanical",
			FullName:      "Bachelor of Technology in Mechanical Engineering",
			Stream:        model.StreamScience,
			Duration:      "4 years",
			Eligibility:   "Class 12 with Physics, Chemistry and Mathematics",
			EntranceExams: []string{"JEE Main", "State CETs"},
			Salary:        model.SalaryBand{Average: "5 LPA", Top: "18 LPA"},
			Demand:        model.TierMedium,
			Difficulty:    model.TierHigh,
			Skills:        []string{"Mechanics", "CAD", "Thermodynamics"},
			Careers:       []string{"Design engineer", "Production engineer", "Automotive engineer"},
			TopColleges:   []string{"IIT Madras", "NIT Trichy", "COEP Pune"},
			Profile:       model.Weights{rea: 0.9, inv: 0.6},
			ClassLevels:   afterClass12,
			MinMarks:      75,
		},
		{
			ID:            "mbbs",
			Name:          "MBBS",
			FullName:      "Bachelor of Medicine and Bachelor of Surgery",
			Stream:        model.StreamScience,
			Duration:      "5.5 years",
			Eligibility:   "Class 12 with Physics, Chemistry and Biology",
			EntranceExams: []string{"NEET UG"},
			Salary:        model.SalaryBand{Average: "10 LPA", Top: "50 LPA"},
			Demand:        model.TierHigh,
			Difficulty:    model.TierHigh,
			Skills:        []string{"Biology", "Empathy", "Clinical reasoning"},
			Careers:       []string{"Doctor", "Surgeon", "Medical researcher"},
			TopColleges:   []string{"AIIMS Delhi", "CMC Vellore", "JIPMER"},
			Profile:       model.Weights{inv: 0.8, soc: 0.7},
			ClassLevels:   afterClass12,
			MinMarks:      50,
		},
		{
			ID:            "bsc_physics",
			Name:          "B.Sc Physics",
			FullName:      "Bachelor of Science (Honours) in Physics",
			Stream:        model.StreamScience,
			Duration:      "3 years",
			Eligibility:   "Class 12 with Physics and Mathematics",
			EntranceExams: []string{"CUET UG"},
			Salary:        model.SalaryBand{Average: "4 LPA", Top: "15 LPA"},
			Demand:        model.TierMedium,
			Difficulty:    model.TierMedium,
			Skills:        []string{"Mathematics", "Experimentation", "Analysis"},
			Careers:       []string{"Researcher", "Lecturer", "Data analyst"},
			TopColleges:   []string{"St. Stephen's College", "IISc Bengaluru", "Presidency University"},
			Profile:       model.Weights{inv: 1.0, rea: 0.2},
			ClassLevels:   afterClass12,
			MinMarks:      60,
		},
		{
			ID:            "bdes",
			Name:          "B.Des",
			FullName:      "Bachelor of Design",
			Stream:        model.StreamArts,
			Duration:      "4 years",
			Eligibility:   "Class 12 in any stream",
			EntranceExams: []string{"UCEED", "NID DAT", "NIFT"},
			Salary:        model.SalaryBand{Average: "5 LPA", Top: "20 LPA"},
			Demand:        model.TierMedium,
			Difficulty:    model.TierMedium,
			Skills:        []string{"Sketching", "Visual thinking", "User research"},
			Careers:       []string{"Product designer", "UX designer", "Communication designer"},
			TopColleges:   []string{"NID Ahmedabad", "IIT Bombay IDC", "NIFT Delhi"},
			Profile:       model.Weights{art: 1.0, rea: 0.3, ent: 0.2},
			ClassLevels:   afterClass12,
		},
		{
			ID:            "ba_psychology",
			Name:          "BA Psychology",
			FullName:      "Bachelor of Arts (Honours) in Psychology",
			Stream:        model.StreamArts,
			Duration:      "3 years",
			Eligibility:   "Class 12 in any stream",
			EntranceExams: []string{"CUET UG"},
			Salary:        model.SalaryBand{Average: "3.5 LPA", Top: "12 LPA"},
			Demand:        model.TierMedium,
			Difficulty:    model.TierMedium,
			Skills:        []string{"Listening", "Research methods", "Empathy"},
			Careers:       []string{"Counsellor", "HR specialist", "Clinical psychologist"},
			TopColleges:   []string{"Lady Shri Ram College", "Christ University", "Fergusson College"},
			Profile:       model.Weights{soc: 0.9, inv: 0.5, art: 0.2},
			ClassLevels:   afterClass12,
			MinMarks:      55,
		},
		{
			ID:            "ba_llb",
			Name:          "BA LLB",
			FullName:      "Integrated Bachelor of Arts and Bachelor of Laws",
			Stream:        model.StreamArts,
			Duration:      "5 years",
			Eligibility:   "Class 12 in any stream with 45%",
			EntranceExams: []string{"CLAT", "AILET"},
			Salary:        model.SalaryBand{Average: "7 LPA", Top: "30 LPA"},
			Demand:        model.TierHigh,
			Difficulty:    model.TierHigh,
			Skills:        []string{"Argumentation", "Reading", "Negotiation"},
			Careers:       []string{"Lawyer", "Legal advisor", "Judicial services"},
			TopColleges:   []string{"NLSIU Bengaluru", "NALSAR Hyderabad", "NLU Delhi"},
			Profile:       model.Weights{ent: 0.8, soc: 0.5, con: 0.3},
			ClassLevels:   afterClass12,
			MinMarks:      45,
		},
		{
			ID:            "bcom",
			Name:          "B.Com",
			FullName:      "Bachelor of Commerce (Honours)",
			Stream:        model.StreamCommerce,
			Duration:      "3 years",
			Eligibility:   "Class 12, commerce preferred",
			EntranceExams: []string{"CUET UG"},
			Salary:        model.SalaryBand{Average: "4 LPA", Top: "12 LPA"},
			Demand:        model.TierHigh,
			Difficulty:    model.TierLow,
			Skills:        []string{"Accounting", "Taxation", "Spreadsheets"},
			Careers:       []string{"Accountant", "Auditor", "Financial analyst"},
			TopColleges:   []string{"SRCC Delhi", "Loyola College", "St. Xavier's Kolkata"},
			Profile:       model.Weights{con: 0.9, ent: 0.5},
			ClassLevels:   afterClass12,
			MinMarks:      60,
		},
		{
			ID:            "bba",
			Name:          "BBA",
			FullName:      "Bachelor of Business Administration",
			Stream:        model.StreamCommerce,
			Duration:      "3 years",
			Eligibility:   "Class 12 in any stream",
			EntranceExams: []string{"IPMAT", "NPAT", "SET"},
			Salary:        model.SalaryBand{Average: "5 LPA", Top: "20 LPA"},
			Demand:        model.TierHigh,
			Difficulty:    model.TierMedium,
			Skills:        []string{"Leadership", "Marketing", "Communication"},
			Careers:       []string{"Business analyst", "Marketing manager", "Entrepreneur"},
			TopColleges:   []string{"IIM Indore (IPM)", "Shaheed Sukhdev College", "Christ University"},
			Profile:       model.Weights{ent: 1.0, soc: 0.4, con: 0.3},
			ClassLevels:   afterClass12,
		},
		{
			ID:            "ca",
			Name:          "Chartered Accountancy",
			FullName:      "Chartered Accountancy (ICAI)",
			Stream:        model.StreamCommerce,
			Duration:      "4.5 years",
			Eligibility:   "Foundation after Class 12",
			EntranceExams: []string{"CA Foundation"},
			Salary:        model.SalaryBand{Average: "9 LPA", Top: "35 LPA"},
			Demand:        model.TierHigh,
			Difficulty:    model.TierHigh,
			Skills:        []string{"Accounting", "Audit", "Law"},
			Careers:       []string{"Chartered accountant", "Tax consultant", "CFO"},
			TopColleges:   []string{"ICAI"},
			Profile:       model.Weights{con: 1.0, inv: 0.3, ent: 0.3},
			ClassLevels:   afterClass12,
			MinMarks:      50,
		},
		{
			ID:            "hotel_management",
			Name:          "BHM",
			FullName:      "Bachelor of Hotel Management",
			Stream:        model.StreamVocational,
			Duration:      "4 years",
			Eligibility:   "Class 12 in any stream",
			EntranceExams: []string{"NCHM JEE"},
			Salary:        model.SalaryBand{Average: "3.5 LPA", Top: "12 LPA"},
			Demand:        model.TierMedium,
			Difficulty:    model.TierLow,
			Skills:        []string{"Hospitality", "Operations", "Communication"},
			Careers:       []string{"Hotel manager", "Chef", "Event manager"},
			TopColleges:   []string{"IHM Pusa", "IHM Mumbai", "WGSHA Manipal"},
			Profile:       model.Weights{soc: 0.7, ent: 0.6, rea: 0.4},
			ClassLevels:   afterClass12,
		},
		{
			ID:            "class11_pcm",
			Name:          "Class 11 Science (PCM)",
			FullName:      "Senior secondary science with Physics, Chemistry and Mathematics",
			Stream:        model.StreamScience,
			Duration:      "2 years",
			Eligibility:   "Class 10 pass",
			Demand:        model.TierHigh,
			Difficulty:    model.TierHigh,
			Skills:        []string{"Mathematics", "Physics"},
			Careers:       []string{"Engineering", "Architecture", "Pure sciences"},
			Profile:       model.Weights{inv: 0.9, rea: 0.5},
			ClassLevels:   afterClass10,
			MinMarks:      70,
		},
		{
			ID:          "class11_pcb",
			Name:        "Class 11 Science (PCB)",
			FullName:    "Senior secondary science with Physics, Chemistry and Biology",
			Stream:      model.StreamScience,
			Duration:    "2 years",
			Eligibility: "Class 10 pass",
			Demand:      model.TierHigh,
			Difficulty:  model.TierHigh,
			Skills:      []string{"Biology", "Chemistry"},
			Careers:     []string{"Medicine", "Pharmacy", "Biotechnology"},
			Profile:     model.Weights{inv: 0.8, soc: 0.5},
			ClassLevels: afterClass10,
			MinMarks:    70,
		},
		{
			ID:          "class11_commerce",
			Name:        "Class 11 Commerce",
			FullName:    "Senior secondary commerce",
			Stream:      model.StreamCommerce,
			Duration:    "2 years",
			Eligibility: "Class 10 pass",
			Demand:      model.TierHigh,
			Difficulty:  model.TierMedium,
			Skills:      []string{"Accountancy", "Economics"},
			Careers:     []string{"Commerce", "Management", "Chartered accountancy"},
			Profile:     model.Weights{con: 0.8, ent: 0.7},
			ClassLevels: afterClass10,
			MinMarks:    55,
		},
		{
			ID:          "class11_humanities",
			Name:        "Class 11 Humanities",
			FullName:    "Senior secondary humanities",
			Stream:      model.StreamArts,
			Duration:    "2 years",
			Eligibility: "Class 10 pass",
			Demand:      model.TierMedium,
			Difficulty:  model.TierMedium,
			Skills:      []string{"Writing", "History", "Political science"},
			Careers:     []string{"Law", "Civil services", "Design", "Journalism"},
			Profile:     model.Weights{art: 0.7, soc: 0.7, ent: 0.3},
			ClassLevels: afterClass10,
		},
		{
			ID:            "diploma_mech",
			Name:          "Polytechnic Diploma (Mechanical)",
			FullName:      "Diploma in Mechanical Engineering",
			Stream:        model.StreamVocational,
			Duration:      "3 years",
			Eligibility:   "Class 10 pass",
			EntranceExams: []string{"State polytechnic CET"},
			Salary:        model.SalaryBand{Average: "2.5 LPA", Top: "6 LPA"},
			Demand:        model.TierMedium,
			Difficulty:    model.TierMedium,
			Skills:        []string{"Machining", "Drawing", "Maintenance"},
			Careers:       []string{"Junior engineer", "Maintenance technician"},
			TopColleges:   []string{"Government Polytechnic Mumbai", "Pusa Polytechnic"},
			Profile:       model.Weights{rea: 1.0, con: 0.3},
			ClassLevels:   afterClass10,
			MinMarks:      35,
		},
		{
			ID:          "iti_electrician",
			Name:        "ITI Electrician",
			FullName:    "Industrial Training Institute, Electrician trade",
			Stream:      model.StreamVocational,
			Duration:    "2 years",
			Eligibility: "Class 10 pass",
			Salary:      model.SalaryBand{Average: "2 LPA", Top: "5 LPA"},
			Demand:      model.TierHigh,
			Difficulty:  model.TierLow,
			Skills:      []string{"Wiring", "Safety", "Troubleshooting"},
			Careers:     []string{"Electrician", "Lineman", "Self-employed contractor"},
			TopColleges: []string{"Government ITI"},
			Profile:     model.Weights{rea: 1.0},
			ClassLevels: afterClass10,
		},
		{
			ID:            "diploma_animation",
			Name:          "Diploma in Animation",
			FullName:      "Diploma in Animation and Multimedia",
			Stream:        model.StreamVocational,
			Duration:      "1-2 years",
			Eligibility:   "Class 10 or Class 12 pass",
			Salary:        model.SalaryBand{Average: "3 LPA", Top: "10 LPA"},
			Demand:        model.TierMedium,
			Difficulty:    model.TierLow,
			Skills:        []string{"Drawing", "3D tools", "Storyboarding"},
			Careers:       []string{"Animator", "Video editor", "Game artist"},
			TopColleges:   []string{"Arena Animation", "MAAC", "Whistling Woods"},
			Profile:       model.Weights{art: 1.0, inv: 0.2},
			ClassLevels:   eitherClass,
		},
	}
}
