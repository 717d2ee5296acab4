package comment

// TemplateSeed defines one comment template for seeding a fresh bank.
type TemplateSeed struct {
	Text     string
	Category string // learning skill category slug, empty for openers and closers
	Level    Level
	Opener   bool
}

// Tags returns the normalized tag set for a seeded template.
func (s TemplateSeed) Tags() []string {
	tags := []string{}
	if s.Level != LevelNone {
		tags = append(tags, "level:"+string(s.Level))
	}
	if s.Category != "" {
		tags = append(tags, "category:"+s.Category)
	}
	if s.Level == LevelNextSteps {
		tags = append(tags, "next-steps")
	}
	if s.Opener {
		tags = append(tags, "opener")
	}
	return append(tags, "jurisdiction:ontario")
}

// categorySeed groups seed texts for one Ontario learning skill.
type categorySeed struct {
	Category string
	ByLevel  map[Level][]string
}

// ontarioSeeds covers the six Ontario learning skills and work habits plus a
// homework-completion category at each achievement level, with next-steps
// phrasing per skill. Texts use the canonical {{placeholder}} form; legacy
// {Name} markers never appear here.
var ontarioSeeds = []categorySeed{
	{
		Category: "responsibility",
		ByLevel: map[Level][]string{
			LevelE: {
				"{{First}} fulfils all responsibilities and commitments with an exemplary level of care.",
				"{{First}} takes full ownership of {{their}} behaviour and is a model of accountability for peers.",
				"{{First}} submits all work on time and goes beyond requirements when completing assigned tasks.",
				"{{First}} manages classroom materials and shared equipment with outstanding care.",
			},
			LevelG: {
				"{{First}} consistently fulfils responsibilities and completes classwork on time.",
				"{{First}} reliably takes responsibility for {{their}} own actions and choices.",
				"{{First}} regularly comes to class prepared and ready to learn.",
				"{{First}} consistently manages {{their}} materials and meets deadlines.",
			},
			LevelS: {
				"{{First}} usually completes assigned work, with occasional reminders about deadlines.",
				"{{First}} is developing the habit of taking responsibility for {{their}} choices.",
				"{{First}} benefits from prompts to return signed forms and materials on time.",
				"{{First}} completes most tasks, though homework is sometimes submitted late.",
			},
			LevelNS: {
				"{{First}} requires frequent reminders to complete and submit assigned work.",
				"{{First}} finds it challenging to accept responsibility for {{their}} behaviour.",
				"{{First}} needs ongoing support to arrive prepared for class.",
				"{{First}} avoids completing homework and requires support with modified timelines.",
			},
			LevelNextSteps: {
				"{{First}} should use {{their}} agenda daily to track assignments and due dates.",
				"{{First}} is encouraged to check in with the teacher before leaving class to confirm what is due.",
				"{{First}} would benefit from breaking larger tasks into smaller steps with interim deadlines.",
			},
		},
	},
	{
		Category: "organization",
		ByLevel: map[Level][]string{
			LevelE: {
				"{{First}} devises and follows an exemplary plan for completing multi-step tasks.",
				"{{First}} keeps {{their}} workspace and digital files exceptionally well organized.",
				"{{First}} establishes priorities and manages time in a way that is outstanding for {{their}} grade.",
				"{{First}} gathers and organizes information from multiple sources with exceptional skill.",
			},
			LevelG: {
				"{{First}} consistently organizes {{their}} time and materials to complete tasks.",
				"{{First}} regularly creates plans before beginning larger assignments.",
				"{{First}} reliably keeps notes and handouts in order and can find them when needed.",
				"{{First}} consistently meets timelines by setting priorities for {{their}} work.",
			},
			LevelS: {
				"{{First}} is developing strategies for organizing {{their}} binder and materials.",
				"{{First}} usually plans ahead, with occasional reminders to pace longer assignments.",
				"{{First}} benefits from checklists when completing multi-step tasks.",
				"{{First}} is emerging as an independent planner but still rushes some final products.",
			},
			LevelNS: {
				"{{First}} requires support to keep track of materials and assignments.",
				"{{First}} finds it challenging to organize {{their}} time when given longer tasks.",
				"{{First}} needs help establishing priorities and frequently leaves work unfinished.",
				"{{First}} requires teacher direction to gather what {{they}} need before starting a task.",
			},
			LevelNextSteps: {
				"{{First}} should spend the first five minutes of work periods making a short plan.",
				"{{First}} is encouraged to use a weekly checklist to organize assignments by due date.",
				"{{First}} would benefit from sorting {{their}} binder with the teacher once a week.",
			},
		},
	},
	{
		Category: "independent-work",
		ByLevel: map[Level][]string{
			LevelE: {
				"{{First}} independently monitors {{their}} own work and uses class time in an exemplary way.",
				"{{First}} follows instructions with minimal supervision and is a leader in self-directed learning.",
				"{{First}} completes tasks to an outstanding standard without prompting.",
				"{{First}} shows exceptional focus during independent work periods.",
			},
			LevelG: {
				"{{First}} consistently uses class time appropriately to complete tasks.",
				"{{First}} regularly follows instructions with minimal supervision.",
				"{{First}} reliably stays on task during independent work periods.",
				"{{First}} consistently reviews {{their}} own work before submitting it.",
			},
			LevelS: {
				"{{First}} usually stays on task, with occasional reminders to maintain focus.",
				"{{First}} is developing the ability to work through challenges without immediate help.",
				"{{First}} benefits from seating that limits distractions during work periods.",
				"{{First}} completes independent tasks when expectations are broken into smaller parts.",
			},
			LevelNS: {
				"{{First}} requires frequent redirection to remain on task.",
				"{{First}} finds it challenging to begin tasks without one-on-one support.",
				"{{First}} needs close supervision to follow multi-step instructions.",
				"{{First}} avoids independent tasks and requires support with modified timelines.",
			},
			LevelNextSteps: {
				"{{First}} should attempt each task independently before asking for help.",
				"{{First}} is encouraged to set a small goal at the start of each work period.",
				"{{First}} would benefit from using a timer to build longer stretches of focused work.",
			},
		},
	},
	{
		Category: "collaboration",
		ByLevel: map[Level][]string{
			LevelE: {
				"{{First}} is an exceptional team member who promotes the participation of all group members.",
				"{{First}} responds positively to the ideas and opinions of others and is a leader in group settings.",
				"{{First}} shares information and resources with others in an exemplary manner.",
				"{{First}} works beyond requirements to help {{their}} group reach its goals.",
			},
			LevelG: {
				"{{First}} consistently works well with a variety of partners and groups.",
				"{{First}} regularly shares ideas and listens to the contributions of others.",
				"{{First}} reliably takes on a fair share of the work in group activities.",
				"{{First}} consistently resolves small conflicts with classmates respectfully.",
			},
			LevelS: {
				"{{First}} usually contributes to group work, with occasional reminders to let others share ideas.",
				"{{First}} is developing strategies for resolving disagreements during group tasks.",
				"{{First}} benefits from assigned roles when working in a group.",
				"{{First}} is emerging as a cooperative partner in structured activities.",
			},
			LevelNS: {
				"{{First}} finds it challenging to share materials and ideas during group activities.",
				"{{First}} requires adult support to resolve conflicts with peers.",
				"{{First}} needs encouragement to participate in group discussions.",
				"{{First}} avoids group roles and requires support to contribute to shared goals.",
			},
			LevelNextSteps: {
				"{{First}} should practise inviting quieter group members to share their thinking.",
				"{{First}} is encouraged to use class sentence starters when disagreeing with a peer.",
				"{{First}} would benefit from taking on one defined role in each group task.",
			},
		},
	},
	{
		Category: "initiative",
		ByLevel: map[Level][]string{
			LevelE: {
				"{{First}} demonstrates an outstanding curiosity and regularly seeks out new learning challenges.",
				"{{First}} approaches new tasks with an exemplary positive attitude.",
				"{{First}} is a leader in class discussions and often extends ideas beyond requirements.",
				"{{First}} demonstrates exceptional willingness to take appropriate risks in {{their}} learning.",
			},
			LevelG: {
				"{{First}} consistently demonstrates a positive attitude toward new learning tasks.",
				"{{First}} regularly asks questions that extend {{their}} understanding.",
				"{{First}} reliably seeks assistance when {{they}} need it.",
				"{{First}} consistently volunteers ideas during class discussions.",
			},
			LevelS: {
				"{{First}} is developing confidence in sharing ideas with the whole class.",
				"{{First}} usually approaches new tasks willingly, with occasional reminders to persevere.",
				"{{First}} benefits from encouragement to try challenging extensions.",
				"{{First}} is emerging as a curious learner in areas of personal interest.",
			},
			LevelNS: {
				"{{First}} requires encouragement to approach new tasks with confidence.",
				"{{First}} finds it challenging to ask for help when {{they}} are unsure.",
				"{{First}} needs prompting to contribute ideas during discussions.",
				"{{First}} avoids unfamiliar tasks and requires support to get started.",
			},
			LevelNextSteps: {
				"{{First}} should ask at least one question during each lesson to clarify {{their}} thinking.",
				"{{First}} is encouraged to choose one challenge activity per week.",
				"{{First}} would benefit from sharing ideas in a small group before the whole class.",
			},
		},
	},
	{
		Category: "self-regulation",
		ByLevel: map[Level][]string{
			LevelE: {
				"{{First}} sets {{their}} own learning goals and monitors progress toward them in an exemplary way.",
				"{{First}} demonstrates outstanding perseverance when faced with challenging tasks.",
				"{{First}} seeks clarification with exceptional independence when expectations are unclear.",
				"{{First}} reflects on feedback and applies it to new work beyond requirements.",
			},
			LevelG: {
				"{{First}} consistently perseveres when work becomes challenging.",
				"{{First}} regularly sets goals and reflects on {{their}} progress.",
				"{{First}} reliably manages frustration and returns to tasks calmly.",
				"{{First}} consistently uses feedback to improve {{their}} work.",
			},
			LevelS: {
				"{{First}} is developing strategies for managing frustration during difficult tasks.",
				"{{First}} usually perseveres, with occasional reminders to take a break and refocus.",
				"{{First}} benefits from co-created goals reviewed at regular intervals.",
				"{{First}} is emerging as a reflective learner when prompted.",
			},
			LevelNS: {
				"{{First}} requires support to manage frustration when tasks are difficult.",
				"{{First}} finds it challenging to set realistic goals for {{their}} learning.",
				"{{First}} needs frequent breaks and adult support to complete demanding tasks.",
				"{{First}} avoids revising work and requires support to act on feedback.",
			},
			LevelNextSteps: {
				"{{First}} should set one small goal each week and review it with the teacher.",
				"{{First}} is encouraged to use the class calm-down strategies before asking to leave a task.",
				"{{First}} would benefit from keeping a short reflection log after major assignments.",
			},
		},
	},
	{
		Category: "homework-completion",
		ByLevel: map[Level][]string{
			LevelE: {
				"{{First}} completes all homework thoroughly and often extends it beyond requirements.",
				"{{First}} returns homework with exemplary care and attention to detail.",
				"{{First}} uses homework as an opportunity to deepen {{their}} understanding in an outstanding way.",
				"{{First}} manages homework alongside other commitments with exceptional skill.",
			},
			LevelG: {
				"{{First}} consistently completes and returns homework on time.",
				"{{First}} regularly reviews homework feedback and corrects errors.",
				"{{First}} reliably records homework in {{their}} agenda each day.",
				"{{First}} consistently comes to class with homework ready to discuss.",
			},
			LevelS: {
				"{{First}} usually completes homework, with occasional reminders about due dates.",
				"{{First}} is developing a regular homework routine at home.",
				"{{First}} benefits from a reduced homework load on busier weeks.",
				"{{First}} completes homework when it is recorded in {{their}} agenda before leaving class.",
			},
			LevelNS: {
				"{{First}} requires frequent reminders to complete and return homework.",
				"{{First}} finds it challenging to complete homework without support at home.",
				"{{First}} needs a modified homework plan to keep pace with the class.",
				"{{First}} avoids homework tasks and requires support with modified timelines.",
			},
			LevelNextSteps: {
				"{{First}} should copy the homework board into {{their}} agenda before packing up.",
				"{{First}} is encouraged to set a regular homework time each evening.",
				"{{First}} would benefit from starting homework in class so questions surface early.",
			},
		},
	},
}

// ontarioOpeners start a report comment; Compose strips nothing from them
// but they conventionally come first.
var ontarioOpeners = []string{
	"{{First}} has had a productive term in {{subject_or_class}}.",
	"It has been a pleasure to teach {{First}} this term.",
	"{{First}} has shown steady growth in {{subject_or_class}} this term.",
	"{{First}} brings a positive presence to our classroom each day.",
	"This term, {{First}} continued to develop {{their}} learning skills and work habits.",
	"{{First}} has settled well into the routines of grade {{grade}}.",
	"{{First}} approaches {{subject_or_class}} with genuine interest.",
	"{{First}} has made {{their}} mark on our classroom community this term.",
}

// ontarioClosers end a report comment on a forward-looking note.
var ontarioClosers = []string{
	"Best of luck next year, {{First}}!",
	"I wish {{First}} a successful year ahead.",
	"{{First}} is well positioned for a strong start to next year.",
	"Keep up the wonderful effort, {{First}}.",
	"I look forward to seeing {{First}} continue to grow next term.",
	"Best of luck in grade {{grade}}, {{First}}!",
}

// OntarioSeeds returns the full Ontario starter bank in a stable order.
func OntarioSeeds() []TemplateSeed {
	var seeds []TemplateSeed

	for _, cat := range ontarioSeeds {
		for _, level := range []Level{LevelE, LevelG, LevelS, LevelNS, LevelNextSteps} {
			for _, text := range cat.ByLevel[level] {
				seeds = append(seeds, TemplateSeed{Text: text, Category: cat.Category, Level: level})
			}
		}
	}

	for _, text := range ontarioOpeners {
		seeds = append(seeds, TemplateSeed{Text: text, Opener: true})
	}
	for _, text := range ontarioClosers {
		seeds = append(seeds, TemplateSeed{Text: text, Level: LevelEND})
	}
	return seeds
}
