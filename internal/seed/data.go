package seed

import "github.com/hopeactionjeunesse/hope-site/internal/models"

func str(s string) *string { return &s }

func initialServices() []models.Service {
	return []models.Service{
		{
			Title:          "Trivial Poursuit Géant",
			Description:    "Trivial poursuit géant réalisé dans une cour de récréation revisité sur les sujets suivants : Harcèlement, Cyber harcèlement, Discrimination, Consentement, Isolement, Agression sexuelle",
			Flower:         "Iris (Iris germanica)",
			FlowerMeaning:  "L'iris symbolise la sagesse, l'espoir et la communication. C'est une fleur qui évoque également la diversité et l'harmonie.",
			TargetAudience: "Fin primaire (5,6èmes) et début secondaire (jusqu'à 2 secondaires)",
			Duration:       "4h (2h d'installation - 2h de jeux)",
			Price:          "60€",
			Details:        str("Outils pédagogique contre le harcèlement scolaire"),
			DisplayOrder:   1,
			IsActive:       true,
		},
		{
			Title:          "Sensibilisation au harcèlement",
			Description:    "Un cercle de paroles est organisé dans un local ou une classe où les élèves et un membre de l'ASBL sont mis en rond pour avoir une approche d'égal à égal. La discussion parle en grande partie du harcèlement en passant par des histoires personnelles de nos membres.",
			Flower:         "Chardon (Cirsium vulgare)",
			FlowerMeaning:  "Le chardon symbolise la protection et la défense. Il reflète le courage face à l'adversité, ainsi que la volonté de se défendre contre les comportements intrusifs.",
			TargetAudience: "Primaire et secondaire (max 20 personnes par groupe)",
			Duration:       "1h",
			Price:          "20€ par classe (15€ si minimum 3 classes)",
			Details:        str("Débat/discussions"),
			DisplayOrder:   2,
			IsActive:       true,
		},
		{
			Title:          "Formation sur le cyber-harcèlement",
			Description:    "Formation destinée aux parents pour les sensibiliser aux dangers du cyber-harcèlement et leur donner des outils pour protéger leurs enfants.",
			Flower:         "Bleuet (Centaurea cyanus)",
			FlowerMeaning:  "Le bleuet est le symbole de la délicatesse et de la résilience dans un monde numérique parfois hostile. Il rappelle également la nécessité de cultiver la gentillesse et la compassion en ligne.",
			TargetAudience: "Parents d'élèves",
			Duration:       "1h30",
			Price:          "60€",
			Details:        str("Pour parents d'élèves"),
			DisplayOrder:   3,
			IsActive:       true,
		},
	}
}

func initialProjects() []models.Project {
	return []models.Project{
		{
			Title:        "Action à Charleroi",
			Location:     "Centre scolaire Catholique Saint-Joseph-Notre-Dame de Jumet",
			Description:  "L'ASBL HOPE Action Jeunesse a eu le plaisir d'intervenir pour une journée de sensibilisation au harcèlement. Tout au long de la journée, nous avons eu l'opportunité d'échanger avec plusieurs classes autour de débats et de discussions participatives. Ces moments de dialogue ont permis aux élèves de mieux comprendre les mécanismes du harcèlement, de prendre conscience de ses conséquences et d'explorer ensemble des solutions concrètes.",
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			Title:        "Action à Mons",
			Location:     "École des Ursulines de Mons",
			Description:  "L'ASBL HOPE Action Jeunesse a eu l'honneur d'intervenir pendant une semaine complète de sensibilisation au harcèlement. Cette initiative a permis de mobiliser l'ensemble de l'école autour de thématiques cruciales telles que le harcèlement scolaire et le cyberharcèlement. Tout au long de la semaine, des activités interactives, jeu grandeur nature, des discussions avec des élèves ont été organisés, leur offrant un espace d'expression libre et bienveillant.",
			DisplayOrder: 2,
			IsActive:     true,
		},
		{
			Title:        "Intervention à la FUCAM",
			Location:     "FUCAM à Mons",
			Description:  "L'ASBL HOPE-AJ a eu l'opportunité de se rendre à la FUCAM à Mons pour rencontrer les étudiants de Bac 2 et 3 en communication, sciences politiques et sciences humaines et sociales. Ces étudiants ont travaillé sur un audit de notre ASBL, basé sur trois axes principaux : la communication événementielle, la communication sur les réseaux sociaux et la stratégie financière. Leur professionnalisme, leur implication et la qualité de leurs propositions étaient impressionnants.",
			DisplayOrder: 3,
			IsActive:     true,
		},
		{
			Title:        "Sensibilisation au Cyberharcèlement",
			Location:     "École Communale d'Élouges",
			Description:  "Le Plan de Cohésion Sociale de Dour a organisé une intervention collaborative impliquant plusieurs acteurs locaux, notamment HOPE-AJ, la police des Hauts-Pays, le service d'aide aux victimes, le PMS et l'AMO Parler pour le dire. Ensemble, nous avons animé deux sessions de sensibilisation sur le cyberharcèlement auprès des élèves de 5e et 6e primaire. Un projet pédagogique et artistique a été lancé, visant à sensibiliser les élèves aux dangers du cyberharcèlement avec la création d'une fresque murale.",
			DisplayOrder: 4,
			IsActive:     true,
		},
		{
			Title:        "La classe Partage",
			Location:     "Institut d'Enseignement Secondaire Paramédical Province",
			Description:  "La classe partage est un lieu de rassemblement dans les écoles où des étudiants de 6ème secondaire s'occupent d'animer une classe deux fois par semaine sur le temps de midi pour des élèves de classes inférieures qui souhaitent se créer des relations amicales, éviter l'isolement et contrer le harcèlement. Cette classe est animée par des jeux de sociétés, des débats et des intervenants extérieurs.",
			DisplayOrder: 5,
			IsActive:     true,
		},
	}
}

func initialTeamMembers() []models.TeamMember {
	return []models.TeamMember{
		{
			Name:         "Romain Lienard",
			Role:         "Fondateur et chef de projet",
			Bio:          str("Fondateur passionné de Hope Action Jeunesse, Romain a transformé son expérience personnelle du harcèlement en une mission pour aider les jeunes en difficulté."),
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			Name:         "Erwin Desmet",
			Role:         "Secrétaire et Coordinateur",
			Bio:          str("Erwin coordonne les activités de l'ASBL et assure la liaison entre les différents projets et partenaires."),
			DisplayOrder: 2,
			IsActive:     true,
		},
		{
			Name:         "Charles Hamaide",
			Role:         "Trésorier et Graphiste",
			Bio:          str("Charles gère les finances de l'ASBL et crée les supports visuels pour nos campagnes de sensibilisation."),
			DisplayOrder: 3,
			IsActive:     true,
		},
		{
			Name:         "Killian Poglajen",
			Role:         "IT Manager",
			Bio:          str("Killian s'occupe de la gestion technique et du développement des outils numériques de l'ASBL."),
			DisplayOrder: 4,
			IsActive:     true,
		},
	}
}
