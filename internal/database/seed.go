package database

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaixianglim/event-recommender/internal/model"
)

// seedUsers and seedEvents are the fixed reference dataset inserted into an
// empty store. Ids are deterministic so that organiser references and demo
// registrations remain stable across fresh deployments.
var seedUsers = []model.User{
	{
		ID:             1,
		Name:           "Samuel Lim",
		Category:       []string{"Technology & Digital", "Learning & Personal Growth"},
		Interests:      []string{"artificial intelligence", "data science", "software development", "career & networking", "investing & financial literacy"},
		PreferredDays:  []string{"Wednesday", "Friday"},
		OfficeLocation: "DTTB",
	},
	{
		ID:             2,
		Name:           "Tan Zeng Iain",
		Category:       []string{"Health & Wellness"},
		Interests:      []string{"badminton", "meditation & mindfulness", "mental health", "running & marathons"},
		PreferredDays:  []string{"Monday", "Friday"},
		OfficeLocation: "Connection 1",
	},
	{
		ID:             3,
		Name:           "Qing Whey",
		Category:       []string{"Arts & Creativity"},
		Interests:      []string{"calligraphy & typography", "graphic design", "painting & drawing"},
		PreferredDays:  []string{"Friday", "Saturday", "Sunday"},
		OfficeLocation: "Nee Soon Camp",
	},
	{
		ID:             4,
		Name:           "Jefferson Low",
		Category:       []string{"Music & Performance", "Arts & Creativity"},
		Interests:      []string{"band", "karaoke", "photography", "video production", "journaling & scrapbooking"},
		PreferredDays:  []string{"Friday", "Saturday"},
		OfficeLocation: "Nee Soon Camp",
	},
	{
		ID:             5,
		Name:           "Choo Lan Chan",
		Category:       []string{"Food & Drink", "Music & Performance"},
		Interests:      []string{"stand-up comedy", "foodie trails", "wine appreciation", "coffee appreciation"},
		PreferredDays:  []string{"Wednesday", "Saturday", "Sunday"},
		OfficeLocation: "BMC",
	},
}

var seedEvents = []model.Event{
	{
		ID:          1,
		Title:       "Tech Innovation Summit 2025",
		Description: "Join industry leaders discussing AI, startups, and cutting-edge technology",
		Category:    "Technology",
		Tags:        []string{"technology", "artificial intelligence", "data science", "web3 & blockchain", "career & networking"},
		Location:    "Marina Bay Convention Center",
		Date:        "2025-08-15",
		Time:        "0900H - 1700H",
		Price:       150,
		OrganiserID: ref(1),
		ImageURL:    "https://cdn.prod.website-files.com/67ccce3ca9de94dc1fafaee6/6852eb78fd649405d57a7864_BG%20Tech%20Innovation.png",
	},
	{
		ID:          2,
		Title:       "Morning Fitness Bootcamp",
		Description: "High-intensity outdoor workout session for all fitness levels",
		Category:    "Fitness",
		Tags:        []string{"mental health", "nutrition", "running & marathons"},
		Location:    "Punggol Park",
		Date:        "2025-07-20",
		Time:        "1900H - 2100H",
		Price:       25,
		OrganiserID: ref(2),
		ImageURL:    "https://static1.squarespace.com/static/5691e3f8a2bab8b5b8e2cc2e/t/57d751e36b8f5b4daf5cefb4/1473729002130/?format=1500w",
	},
	{
		ID:          3,
		Title:       "Modern Art Gallery Opening",
		Description: "Exclusive preview of contemporary paintings and sculptures",
		Category:    "Arts & Culture",
		Tags:        []string{"calligraphy & typography", "diy crafts & upcycling", "painting & drawing", "photography", "urban sketching", "video production"},
		Location:    "Marina Bay Convention Centre",
		Date:        "2025-07-25",
		Time:        "2000H - 2230H",
		Price:       0,
		OrganiserID: ref(3),
		ImageURL:    "https://sgmagazine.com/wp-content/uploads/2023/12/ArtScience-Museum-at-Marina-Bay-Sands.jpg",
	},
	{
		ID:          4,
		Title:       "Jazz Under the Stars",
		Description: "Live jazz performance in an intimate outdoor setting",
		Category:    "Music",
		Tags:        []string{"foodie trails", "wine appreciation", "band", "karaoke"},
		Location:    "Blu Jaz Clarke Quay",
		Date:        "2025-08-05",
		Time:        "2000H - 2100H",
		Price:       40,
		OrganiserID: ref(4),
		ImageURL:    "https://www.blujazcafe.net/products/5a67480.jpg",
	},
	{
		ID:          5,
		Title:       "Culinary Masterclass",
		Description: "Learn advanced cooking techniques from professional chefs",
		Category:    "Food & Drink",
		Tags:        []string{"coffee appreciation", "foodie trails", "wine appreciation"},
		Location:    "Palate Sensations",
		Date:        "2025-07-30",
		Time:        "1900H-2030H",
		Price:       80,
		OrganiserID: ref(5),
		ImageURL:    "https://media.nedigital.sg/fairprice/images/9120d59a-b799-4ee1-ab1c-5afb878af8a9/Lifestyle%20Image.jpg",
	},
	{
		ID:          6,
		Title:       "Marathon Training Group",
		Description: "Weekly running group preparing for the city marathon",
		Category:    "Fitness",
		Tags:        []string{"running & marathons", "mental health"},
		Location:    "East Coast Park",
		Date:        "2025-07-15",
		Time:        "1900H - 2100H",
		Price:       15,
		OrganiserID: ref(4),
		ImageURL:    "https://images.squarespace-cdn.com/content/v1/55b7f4ffe4b0a286c4c3499e/84d6fbf5-4a9f-4af6-bd3d-b526c4a3229d/training-for-a-marathon",
	},
	{
		ID:          7,
		Title:       "Startup Pitch Competition",
		Description: "Watch entrepreneurs pitch their innovative business ideas",
		Category:    "Business",
		Tags:        []string{"career & networking", "investing & financial literacy", "artificial intelligence", "data science", "software development", "web3 & blockchain"},
		Location:    "Tachyon@Tampines M-Works",
		Date:        "2025-08-10",
		Time:        "1000H - 1500H",
		Price:       30,
		OrganiserID: ref(3),
		ImageURL:    "https://www.webintravel.com/wp-content/uploads/2025/05/featured-GSP-2025-Winners-1066x440.png",
	},
	{
		ID:          8,
		Title:       "Food Festival Downtown",
		Description: "Taste cuisines from around the world at local restaurants",
		Category:    "Food & Drink",
		Tags:        []string{"foodie trails", "local heritage & hidden gems", "weekend explorers"},
		Location:    "iLights@Marina Bay",
		Date:        "2025-08-01",
		Time:        "1900H - 2100H",
		Price:       20,
		OrganiserID: ref(2),
		ImageURL:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQ2HM7hGKBe7T4auSW1MXMGGmMoTpwC-WbOFw&s",
	},
}

func ref(id int64) *int64 { return &id }

// seed inserts the reference dataset in a single transaction and advances
// the identity sequences past the highest seeded id so later inserts do
// not collide.
func seed(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, u := range seedUsers {
		category, err := json.Marshal(u.Category)
		if err != nil {
			return fmt.Errorf("encode category: %w", err)
		}
		interests, err := json.Marshal(u.Interests)
		if err != nil {
			return fmt.Errorf("encode interests: %w", err)
		}
		days, err := json.Marshal(u.PreferredDays)
		if err != nil {
			return fmt.Errorf("encode preferred days: %w", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO users (id, name, category, interests, preferred_day, office_location)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			u.ID, u.Name, string(category), string(interests), string(days), u.OfficeLocation,
		)
		if err != nil {
			return fmt.Errorf("insert seed user %d: %w", u.ID, err)
		}
	}

	for _, e := range seedEvents {
		tags, err := json.Marshal(e.Tags)
		if err != nil {
			return fmt.Errorf("encode tags: %w", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO events (id, title, description, category, tags, location, date, time, price, organiser_id, image_url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			e.ID, e.Title, e.Description, e.Category, string(tags), e.Location, e.Date, e.Time, e.Price, e.OrganiserID, e.ImageURL,
		)
		if err != nil {
			return fmt.Errorf("insert seed event %d: %w", e.ID, err)
		}
	}

	for _, table := range []string{"users", "events"} {
		_, err = tx.Exec(ctx, fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))`,
			table, table,
		))
		if err != nil {
			return fmt.Errorf("advance %s id sequence: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}
