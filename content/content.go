// Package content holds the copy shown on each page of the site.
package content

import "strconv"

// Institute names used in page headings
const (
	InstituteName  = "Institute of Applied Modern Research"
	InstituteShort = "IAMR"
)

// Card is a titled blurb with an icon
type Card struct {
	Title       string
	Icon        string
	Description string
}

// Stat is a headline number on the home page
type Stat struct {
	Value string
	Label string
}

// Event is an upcoming campus event
type Event struct {
	Name     string
	Date     string
	Location string
	Icon     string
}

// Milestone is one entry in the institute history
type Milestone struct {
	Year  int
	Event string
}

// Person is a member of the leadership team
type Person struct {
	Name     string
	Role     string
	Bio      string
	ImageURL string
}

// Department is a contact point on the contact page
type Department struct {
	Title       string
	Icon        string
	Phone       string
	Email       string
	Description string
}

// Step is a stage of the application process
type Step struct {
	Number      int
	Title       string
	Icon        string
	Description string
}

// Deadline is an admissions date
type Deadline struct {
	Name    string
	Date    string
	Status  string
	Details string
}

// Resource is an academic life block with a call to action
type Resource struct {
	Title       string
	Icon        string
	Description string
	Action      string
	Link        string
	Primary     bool
}

var Stats = []Stat{
	{Value: "50+", Label: "Years of Excellence"},
	{Value: "98%", Label: "Placement Rate"},
	{Value: "25K+", Label: "Successful Alumni"},
	{Value: "Top 5", Label: "Research Ranking"},
}

var Features = []Card{
	{Title: "Cutting-Edge Research", Icon: "book-open", Description: "Explore groundbreaking studies and innovation hubs driving tomorrow's technology."},
	{Title: "Global Faculty", Icon: "user", Description: "Learn from internationally recognized professors and industry leaders."},
	{Title: "Career Placement", Icon: "check-circle", Description: "Achieve success with a 98% placement rate in top global companies."},
}

var Events = []Event{
	{Name: "Annual Tech Symposium", Date: "Oct 25, 2025", Location: "Auditorium Hall 1", Icon: "calendar"},
	{Name: "Alumni Meet & Greet", Date: "Nov 10, 2025", Location: "Campus Green", Icon: "user"},
	{Name: "Admissions Info Session", Date: "Dec 1, 2025", Location: "Online / Zoom", Icon: "map-pin"},
}

const (
	Mission = "To provide an unparalleled educational experience focused on applied research and interdisciplinary knowledge. We empower students to critically analyze complex global issues and create innovative solutions that serve humanity."
	Vision  = "To be globally recognized as the leading institute for integrating technological advancement with ethical leadership, setting the standard for future-proof education and societal impact."
)

var Values = []Card{
	{Title: "Innovation", Icon: "lightbulb", Description: "Fostering creative problem-solving and embracing future technologies."},
	{Title: "Integrity", Icon: "check-circle", Description: "Upholding the highest standards of ethics, honesty, and accountability."},
	{Title: "Inclusion", Icon: "users", Description: "Cultivating a diverse, welcoming, and equitable community for all learners."},
	{Title: "Impact", Icon: "globe", Description: "Driving meaningful, positive change in local and global communities."},
}

var History = []Milestone{
	{Year: 1975, Event: "IAMR is founded as a specialized institute for applied technology."},
	{Year: 1990, Event: "Expanded curriculum to include Liberal Arts and Sciences."},
	{Year: 2010, Event: "Launched the Global Research Initiative, achieving Top 10 ranking."},
	{Year: 2024, Event: "Completed the state-of-the-art Innovation Campus expansion."},
}

var President = Person{
	Name:     "Dr. Helena Vance",
	Role:     "President & CEO",
	Bio:      "Leading the institute since 2018 with a focus on sustainable technology and global partnerships.",
	ImageURL: "/placeholder/120x120?text=DEAN&bg=E0E7FF&fg=1E40AF",
}

var Departments = []Department{
	{Title: "Admissions Office", Icon: "graduation-cap", Phone: "(555) 123-4567", Email: "admissions@iamr.edu", Description: "Inquiries about applications, enrollment, and campus tours."},
	{Title: "General Inquiries", Icon: "phone", Phone: "(555) 987-6543", Email: "info@iamr.edu", Description: "For general questions about the institute and operations."},
	{Title: "Career Services", Icon: "briefcase", Phone: "(555) 555-0000", Email: "careers@iamr.edu", Description: "For employer relations, job postings, and alumni career support."},
}

// Campus is the location block on the contact page
var Campus = struct {
	Name    string
	Address string
	MapURL  string
	Note    string
}{
	Name:    "IAMR Global Headquarters",
	Address: "123 Innovation Drive, Tech City, Global 90210",
	MapURL:  "/placeholder/640x256?text=Campus+Map&bg=E5E7EB&fg=6B7280",
	Note:    "Our campus is open for prospective students and visitors. Please use the admissions contact above to schedule an official campus tour.",
}

var Steps = []Step{
	{Number: 1, Title: "Review Program Requirements", Icon: "book-open", Description: "Ensure you meet the prerequisite GPA, test scores, and major-specific requirements for your desired program."},
	{Number: 2, Title: "Prepare Application Materials", Icon: "file-text", Description: "Gather transcripts, letters of recommendation, personal essays, and standardized test results."},
	{Number: 3, Title: "Submit Online Application", Icon: "upload", Description: "Fill out the official IAMR application form and pay the application fee before the deadline."},
	{Number: 4, Title: "Await Decision & Financial Aid", Icon: "dollar-sign", Description: "Your application will be reviewed. We will notify you of the decision and any offered financial aid package."},
}

var Deadlines = []Deadline{
	{Name: "Early Action Deadline", Date: "November 15, 2025", Status: "Upcoming", Details: "Non-binding early submission for priority review."},
	{Name: "Regular Decision Deadline", Date: "January 5, 2026", Status: "Open", Details: "Standard application submission deadline."},
	{Name: "Financial Aid (FAFSA/CSS)", Date: "February 1, 2026", Status: "Open", Details: "Deadline for all financial aid documentation."},
}

const ResearchBlurb = "IAMR faculty and students collaborate on $100M in annual sponsored research, focusing on sustainability, artificial intelligence, and urban development. Join us in making the next breakthrough."

var Resources = []Resource{
	{Title: "Library & Archives", Icon: "book-open", Description: "Access millions of digital and physical resources. Our libraries are open 24/7 during the academic year, supported by dedicated subject matter experts.", Action: "View Hours", Link: "/contact"},
	{Title: "Student Advising", Icon: "users", Description: "Every student is assigned a dedicated faculty advisor to guide their academic path, career planning, and personal development from day one.", Action: "Contact Advisor", Link: "/contact", Primary: true},
}

// ProgramArea is an Academics tab and the programs listed under it
type ProgramArea struct {
	Key      string
	Label    string
	Programs []Card
}

// DefaultArea is the tab selected when the Academics page opens
const DefaultArea = "engineering"

var ProgramAreas = []ProgramArea{
	{
		Key:   "engineering",
		Label: "Engineering & Tech",
		Programs: []Card{
			{Title: "Computer Science & AI", Icon: "code", Description: "Focus on machine learning, data science, and advanced software systems."},
			{Title: "Renewable Energy Systems", Icon: "lightbulb", Description: "Developing sustainable solutions for power generation and energy efficiency."},
			{Title: "Aerospace & Robotics", Icon: "graduation-cap", Description: "Designing future aerial systems and autonomous mobile robotics."},
		},
	},
	{
		Key:   "arts-sciences",
		Label: "Arts & Sciences",
		Programs: []Card{
			{Title: "Global History & Policy", Icon: "landmark", Description: "Analyzing world events to shape ethical and effective public policy."},
			{Title: "Computational Biology", Icon: "users", Description: "Integrating computing methods with biological research and genetics."},
			{Title: "Creative Writing & Media", Icon: "book-open", Description: "Mastering storytelling across digital, print, and cinematic platforms."},
		},
	},
	{
		Key:   "business",
		Label: "Business & Policy",
		Programs: []Card{
			{Title: "Data-Driven Finance", Icon: "banknote", Description: "Leveraging financial modeling and quantitative analysis for modern markets."},
			{Title: "Innovation Management", Icon: "briefcase", Description: "Leading teams and organizations through periods of rapid technological change."},
			{Title: "Global Marketing Strategy", Icon: "globe", Description: "Developing multinational campaigns sensitive to diverse cultural contexts."},
		},
	},
}

// AreaByKey returns the program area with the given tab key
func AreaByKey(key string) (ProgramArea, bool) {
	for _, area := range ProgramAreas {
		if area.Key == key {
			return area, true
		}
	}
	return ProgramArea{}, false
}

// ProgramPath is the detail page link for a program card
func ProgramPath(areaKey string, index int) string {
	return "/academics/" + areaKey + "/" + strconv.Itoa(index)
}

// FindProgram resolves the area and index segments of a program detail path
func FindProgram(areaKey, index string) (ProgramArea, Card, bool) {
	area, ok := AreaByKey(areaKey)
	if !ok {
		return ProgramArea{}, Card{}, false
	}
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 || i >= len(area.Programs) || strconv.Itoa(i) != index {
		return ProgramArea{}, Card{}, false
	}
	return area, area.Programs[i], true
}
