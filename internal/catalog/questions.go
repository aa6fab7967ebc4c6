package catalog

import "careercompass/internal/model"

// Version of the built-in question catalog
const Version = "2026.1"

const (
	rea = model.Realistic
	inv = model.Investigative
	art = model.Artistic
	soc = model.Social
	ent = model.Enterprising
	con = model.Conventional
)

func opt(id, label string, w model.Weights) model.Option {
	return model.Option{ID: id, Label: label, Weights: w}
}

func when(questionID string, optionIDs ...string) model.Condition {
	return model.Condition{QuestionID: questionID, OptionIDs: optionIDs}
}

// DefaultQuestions returns the built-in question catalog: eight baseline
// questions, one deep-dive group per interest dimension, and the academic,
// values, skills and learning-style partitions.
func DefaultQuestions() model.QuestionCatalog {
	return model.QuestionCatalog{
		Version: Version,
		Baseline: []model.Question{
			{
				ID:   "b_weekend",
				Text: "Which weekend plan sounds the most fun?",
				Kind: model.KindSingleChoice,
				Options: []model.Option{
					opt("build", "Building or fixing something with my hands", model.Weights{rea: 3}),
					opt("experiment", "Trying an experiment or solving a puzzle", model.Weights{inv: 3}),
					opt("create", "Drawing, writing, music or making videos", model.Weights{art: 3}),
					opt("volunteer", "Helping out at a community event", model.Weights{soc: 3}),
					opt("organise_event", "Organising a trip or a small sale", model.Weights{ent: 3}),
					opt("sort_collection", "Sorting and cataloguing a collection", model.Weights{con: 3}),
				},
			},
			{
				ID:   "b_subject",
				Text: "Which subject do you look forward to the most?",
				Kind: model.KindSingleChoice,
				Options: []model.Option{
					opt("workshop", "Workshop, technical drawing or physical education", model.Weights{rea: 3}),
					opt("science", "Science and mathematics", model.Weights{inv: 3}),
					opt("literature", "Art, music or literature", model.Weights{art: 3}),
					opt("social_studies", "History, civics or psychology", model.Weights{soc: 3}),
					opt("business", "Business studies or economics", model.Weights{ent: 3}),
					opt("accounts", "Accountancy or computer applications", model.Weights{con: 3}),
				},
			},
			{
				ID:   "b_fair",
				Text: "You have a free hour at a school fair. Where do you head first?",
				Kind: model.KindScenario,
				Options: []model.Option{
					opt("robot_stall", "The robotics stall where you can assemble a kit", model.Weights{rea: 2, inv: 1}),
					opt("science_demo", "The chemistry demo that explains why the colours change", model.Weights{inv: 3}),
					opt("mural_wall", "The open mural wall", model.Weights{art: 3}),
					opt("help_desk", "The help desk guiding younger students", model.Weights{soc: 3}),
					opt("pitch_corner", "The pitch corner selling your class's products", model.Weights{ent: 3}),
					opt("ticket_counter", "The ticket counter keeping the accounts straight", model.Weights{con: 3}),
				},
			},
			{
				ID:   "b_try",
				Text: "Which of these would you like to try? Pick any.",
				Kind: model.KindMultiSelect,
				Options: []model.Option{
					opt("repair_bike", "Repairing a bicycle", model.Weights{rea: 2}),
					opt("code_app", "Coding a small app", model.Weights{inv: 2, con: 0.5}),
					opt("write_story", "Writing a short story", model.Weights{art: 2}),
					opt("teach_kids", "Teaching kids in your neighbourhood", model.Weights{soc: 2}),
					opt("run_stall", "Running a stall at a market", model.Weights{ent: 2}),
					opt("manage_budget", "Managing the class budget", model.Weights{con: 2}),
				},
			},
			{
				ID:   "b_approach",
				Text: "Rank how you prefer to tackle a tough problem, favourite first.",
				Kind: model.KindRanking,
				Options: []model.Option{
					opt("hands_on", "Get hands-on and try things", model.Weights{rea: 3}),
					opt("analyse", "Break it down and analyse it", model.Weights{inv: 3}),
					opt("imagine", "Imagine a completely new angle", model.Weights{art: 3}),
					opt("discuss", "Talk it through with people", model.Weights{soc: 3}),
					opt("take_charge", "Take charge and delegate", model.Weights{ent: 3}),
					opt("checklist", "Make a checklist and follow it", model.Weights{con: 3}),
				},
			},
			{
				ID:   "b_team_role",
				Text: "In a group project, which role do you usually end up in?",
				Kind: model.KindSingleChoice,
				Options: []model.Option{
					opt("model_maker", "Building the model or prototype", model.Weights{rea: 3}),
					opt("researcher", "Researching and checking the facts", model.Weights{inv: 3}),
					opt("designer", "Designing how it looks", model.Weights{art: 3}),
					opt("mediator", "Keeping everyone working together", model.Weights{soc: 3}),
					opt("leader", "Leading and presenting", model.Weights{ent: 3}),
					opt("planner", "Planning the schedule and tracking tasks", model.Weights{con: 3}),
				},
			},
			{
				ID:      "b_puzzles",
				Text:    "How much do you enjoy puzzles, patterns and number problems?",
				Kind:    model.KindSlider,
				Weights: model.Weights{inv: 3, con: 1},
			},
			{
				ID:   "b_headline",
				Text: "Ten years from now, which headline about you would make you proudest?",
				Kind: model.KindScenario,
				Options: []model.Option{
					opt("engineer", "Local engineer builds the city's new flyover", model.Weights{rea: 3}),
					opt("discover", "Young researcher discovers a new antibiotic", model.Weights{inv: 3}),
					opt("award", "Debut film wins a national award", model.Weights{art: 3}),
					opt("reformer", "Teacher transforms rural schools", model.Weights{soc: 3}),
					opt("founder", "Startup founder raises first funding round", model.Weights{ent: 3}),
					opt("controller", "Youngest finance controller at a major bank", model.Weights{con: 3}),
				},
			},
		},
		DeepDives: []model.DeepDiveGroup{
			{
				ID:    "dd_realistic",
				Title: "Hands-on work",
				Activation: model.Activation{AnyOf: []model.Condition{
					when("b_weekend", "build"),
					when("b_subject", "workshop"),
					when("b_fair", "robot_stall"),
					when("b_approach", "hands_on"),
					when("b_headline", "engineer"),
				}},
				Questions: []model.Question{
					{
						ID:   "dr_machine",
						Text: "Which would you rather take apart to see how it works?",
						Kind: model.KindSingleChoice,
						Options: []model.Option{
							opt("engine", "A motorcycle engine", model.Weights{rea: 3}),
							opt("circuit", "A radio circuit", model.Weights{rea: 2, inv: 1}),
							opt("plumbing", "The plumbing under a sink", model.Weights{rea: 2, con: 1}),
						},
					},
					{
						ID:      "dr_outdoors",
						Text:    "How happy would you be working outdoors or on a site most days?",
						Kind:    model.KindSlider,
						Weights: model.Weights{rea: 3},
					},
					{
						ID:   "dr_projects",
						Text: "Which projects have you enjoyed? Pick any.",
						Kind: model.KindMultiSelect,
						Options: []model.Option{
							opt("woodwork", "Woodwork or craft", model.Weights{rea: 2}),
							opt("gardening", "Gardening or farming", model.Weights{rea: 2, soc: 0.5}),
							opt("electronics", "Electronics kits", model.Weights{rea: 2, inv: 1}),
							opt("cooking", "Cooking for a crowd", model.Weights{rea: 1, soc: 1}),
						},
					},
				},
			},
			{
				ID:    "dd_investigative",
				Title: "Research and analysis",
				Activation: model.Activation{AnyOf: []model.Condition{
					when("b_weekend", "experiment"),
					when("b_subject", "science"),
					when("b_fair", "science_demo"),
					when("b_approach", "analyse"),
					when("b_headline", "discover"),
				}},
				Questions: []model.Question{
					{
						ID:   "di_investigation",
						Text: "Which kind of investigation excites you most?",
						Kind: model.KindSingleChoice,
						Options: []model.Option{
							opt("lab", "Running experiments in a lab", model.Weights{inv: 3, rea: 1}),
							opt("data", "Finding patterns in data", model.Weights{inv: 3, con: 1}),
							opt("field", "Field studies with real communities", model.Weights{inv: 2, soc: 1}),
							opt("theory", "Working out a theory on paper", model.Weights{inv: 3}),
						},
					},
					{
						ID:      "di_focus",
						Text:    "How comfortable are you with long, focused study sessions?",
						Kind:    model.KindSlider,
						Weights: model.Weights{inv: 3},
					},
					{
						ID:   "di_reading",
						Text: "Which topics would you read about for fun? Pick any.",
						Kind: model.KindMultiSelect,
						Options: []model.Option{
							opt("medicine", "Medicine and the human body", model.Weights{inv: 2, soc: 1}),
							opt("space", "Space and physics", model.Weights{inv: 2, rea: 0.5}),
							opt("computing", "Computers and AI", model.Weights{inv: 2, con: 0.5}),
							opt("environment", "Climate and the environment", model.Weights{inv: 1, rea: 1}),
						},
					},
				},
			},
			{
				ID:    "dd_artistic",
				Title: "Creative expression",
				Activation: model.Activation{AnyOf: []model.Condition{
					when("b_weekend", "create"),
					when("b_subject", "literature"),
					when("b_fair", "mural_wall"),
					when("b_approach", "imagine"),
					when("b_headline", "award"),
				}},
				Questions: []model.Question{
					{
						ID:   "da_medium",
						Text: "Which creative medium pulls you in the most?",
						Kind: model.KindSingleChoice,
						Options: []model.Option{
							opt("visual", "Drawing, painting or design", model.Weights{art: 3}),
							opt("words", "Writing and storytelling", model.Weights{art: 3, soc: 0.5}),
							opt("performance", "Music, dance or theatre", model.Weights{art: 3, ent: 0.5}),
							opt("digital", "Animation, film or games", model.Weights{art: 2, inv: 1}),
						},
					},
					{
						ID:   "da_brief",
						Text: "A client asks for a poster by tomorrow with no brief. You...",
						Kind: model.KindScenario,
						Options: []model.Option{
							opt("sketch", "Start sketching ten wild ideas", model.Weights{art: 3}),
							opt("ask", "Ask the client about their audience first", model.Weights{art: 1, soc: 2}),
							opt("template", "Use a tried template and finish early", model.Weights{con: 2}),
						},
					},
				},
			},
			{
				ID:    "dd_social",
				Title: "Working with people",
				Activation: model.Activation{AnyOf: []model.Condition{
					when("b_weekend", "volunteer"),
					when("b_subject", "social_studies"),
					when("b_fair", "help_desk"),
					when("b_approach", "discuss"),
					when("b_team_role", "mediator"),
					when("b_headline", "reformer"),
				}},
				Questions: []model.Question{
					{
						ID:   "ds_helping",
						Text: "Which kind of helping feels most rewarding?",
						Kind: model.KindSingleChoice,
						Options: []model.Option{
							opt("teaching", "Teaching or tutoring", model.Weights{soc: 3}),
							opt("caring", "Caring for people who are unwell", model.Weights{soc: 3, inv: 0.5}),
							opt("counselling", "Listening and giving advice", model.Weights{soc: 3}),
							opt("organising_help", "Organising a relief drive", model.Weights{soc: 2, ent: 1}),
						},
					},
					{
						ID:      "ds_patience",
						Text:    "How patient are you when explaining something for the third time?",
						Kind:    model.KindSlider,
						Weights: model.Weights{soc: 3},
					},
				},
			},
			{
				ID:    "dd_enterprising",
				Title: "Leading and persuading",
				Activation: model.Activation{AnyOf: []model.Condition{
					when("b_weekend", "organise_event"),
					when("b_subject", "business"),
					when("b_fair", "pitch_corner"),
					when("b_try", "run_stall"),
					when("b_approach", "take_charge"),
					when("b_team_role", "leader"),
					when("b_headline", "founder"),
				}},
				Questions: []model.Question{
					{
						ID:   "de_venture",
						Text: "You get ₹10,000 to start something. What do you do?",
						Kind: model.KindScenario,
						Options: []model.Option{
							opt("business", "Start a small business", model.Weights{ent: 3}),
							opt("event", "Run a paid event", model.Weights{ent: 2, soc: 1}),
							opt("invest", "Invest it and track the returns", model.Weights{ent: 1, con: 2}),
						},
					},
					{
						ID:      "de_risk",
						Text:    "How comfortable are you taking risks for a bigger reward?",
						Kind:    model.KindSlider,
						Weights: model.Weights{ent: 3},
					},
				},
			},
			{
				ID:    "dd_conventional",
				Title: "Order and detail",
				Activation: model.Activation{AnyOf: []model.Condition{
					when("b_weekend", "sort_collection"),
					when("b_subject", "accounts"),
					when("b_fair", "ticket_counter"),
					when("b_try", "manage_budget"),
					when("b_approach", "checklist"),
					when("b_team_role", "planner"),
					when("b_headline", "controller"),
				}},
				Questions: []model.Question{
					{
						ID:   "dc_task",
						Text: "Which task would you finish first?",
						Kind: model.KindSingleChoice,
						Options: []model.Option{
							opt("ledger", "Balancing a ledger", model.Weights{con: 3}),
							opt("records", "Organising records", model.Weights{con: 3}),
							opt("schedule", "Building a timetable", model.Weights{con: 2, ent: 1}),
						},
					},
					{
						ID:      "dc_precision",
						Text:    "How much does a small mistake in your work bother you?",
						Kind:    model.KindSlider,
						Weights: model.Weights{con: 3},
					},
				},
			},
		},
		Academic: []model.Question{
			{
				ID:   "ac_strongest",
				Text: "Which subject group is your strongest?",
				Kind: model.KindSingleChoice,
				Options: []model.Option{
					opt("pcm", "Physics, chemistry and mathematics", model.Weights{inv: 2, rea: 1}),
					opt("pcb", "Physics, chemistry and biology", model.Weights{inv: 2, soc: 1}),
					opt("languages", "Languages", model.Weights{art: 2}),
					opt("humanities", "History, geography and civics", model.Weights{soc: 1, art: 1}),
					opt("commerce", "Accountancy and economics", model.Weights{con: 2, ent: 1}),
				},
			},
			{
				ID:      "ac_maths",
				Text:    "How would you rate your comfort with mathematics?",
				Kind:    model.KindSlider,
				Weights: model.Weights{inv: 2, con: 2},
			},
			{
				ID:   "ac_activities",
				Text: "Which activities have you taken part in? Pick any.",
				Kind: model.KindMultiSelect,
				Options: []model.Option{
					opt("olympiad", "Science or maths olympiad", model.Weights{inv: 2}),
					opt("debate", "Debate or MUN", model.Weights{ent: 1, soc: 1}),
					opt("art_club", "Art or music club", model.Weights{art: 2}),
					opt("nss", "NSS or community service", model.Weights{soc: 2}),
					opt("robotics", "Robotics club", model.Weights{rea: 2, inv: 1}),
					opt("school_bank", "Running the school bank or canteen", model.Weights{con: 2}),
				},
			},
		},
		Values: []model.Question{
			{
				ID:   "va_priorities",
				Text: "Rank what matters most to you in a career, most important first.",
				Kind: model.KindRanking,
				Options: []model.Option{
					opt("salary", "A high salary", model.Weights{ent: 1, con: 1}),
					opt("impact", "Helping people", model.Weights{soc: 2}),
					opt("creativity", "Creative freedom", model.Weights{art: 2}),
					opt("stability", "A stable job", model.Weights{con: 2}),
					opt("discovery", "Learning new things", model.Weights{inv: 2}),
				},
			},
			{
				ID:   "va_offer",
				Text: "You receive two job offers with the same pay. Which do you take?",
				Kind: model.KindScenario,
				Options: []model.Option{
					opt("government", "A secure government post", model.Weights{con: 2}),
					opt("startup", "A fast-growing startup", model.Weights{ent: 2}),
					opt("ngo", "An NGO working in villages", model.Weights{soc: 2}),
					opt("lab", "A research lab", model.Weights{inv: 2}),
				},
			},
			{
				ID:      "va_recognition",
				Text:    "How important is public recognition for your work?",
				Kind:    model.KindSlider,
				Weights: model.Weights{ent: 2, art: 1},
			},
		},
		Skills: []model.Question{
			{
				ID:   "sk_self_rating",
				Text: "Rate yourself from 0 to 10 on each skill.",
				Kind: model.KindSkillGrid,
				Skills: []model.SkillScale{
					{Name: "fixing_things", Dimension: rea},
					{Name: "analysing_data", Dimension: inv},
					{Name: "drawing", Dimension: art},
					{Name: "explaining", Dimension: soc},
					{Name: "persuading", Dimension: ent},
					{Name: "organising", Dimension: con},
				},
			},
			{
				ID:   "sk_tools",
				Text: "Which tools have you used? Pick any.",
				Kind: model.KindMultiSelect,
				Options: []model.Option{
					opt("hand_tools", "Hand tools or a soldering iron", model.Weights{rea: 1}),
					opt("python", "Python or Scratch", model.Weights{inv: 1}),
					opt("camera", "A camera or editing software", model.Weights{art: 1}),
					opt("spreadsheet", "Spreadsheets", model.Weights{con: 1}),
				},
			},
		},
		LearningStyle: []model.Question{
			{
				ID:   "ls_best",
				Text: "How do you learn best?",
				Kind: model.KindSingleChoice,
				Options: []model.Option{
					opt("doing", "By doing it myself", model.Weights{rea: 1}),
					opt("reading", "By reading and taking notes", model.Weights{inv: 1}),
					opt("visual", "From diagrams and videos", model.Weights{art: 1}),
					opt("group", "In a study group", model.Weights{soc: 1}),
				},
			},
			{
				ID:   "ls_exam",
				Text: "The week before an exam, you usually...",
				Kind: model.KindScenario,
				Options: []model.Option{
					opt("timetable", "Make a strict timetable", model.Weights{con: 1}),
					opt("teach_friend", "Teach the chapters to a friend", model.Weights{soc: 1}),
					opt("practice", "Solve every past paper", model.Weights{inv: 1}),
					opt("mind_map", "Draw mind maps", model.Weights{art: 1}),
				},
			},
			{
				ID:      "ls_presenting",
				Text:    "How much do you enjoy presenting in front of the class?",
				Kind:    model.KindSlider,
				Weights: model.Weights{soc: 1, ent: 2},
			},
		},
	}
}
