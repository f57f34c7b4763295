package seeder

func Defaults() []Seeder {
	return []Seeder{
		TrendingSkillsSeeder{},
		JobsSeeder{},
	}
}
