package catalog

func mecGrade(g int) *int { return &g }

func price(p string) *string { return &p }

// courses is the curated catalog, loaded once and never mutated.
var courses = []Course{
	{
		ID:            "ufpe-mestrado-cc",
		Institution:   "UFPE - Centro de Informática (CIn)",
		Program:       "Mestrado Acadêmico em Ciência da Computação",
		Level:         LevelMestrado,
		Modality:      ModalityPresencial,
		Shift:         ShiftFlexivel,
		Area:          "Ciência da Computação",
		City:          "Recife",
		State:         "PE",
		Duration:      "24 meses",
		URL:           "https://portal.cin.ufpe.br/pos-graduacao/stricto-sensu/programa-academico/",
		MECRecognized: true,
		MECGrade:      mecGrade(5),
		Price:         price("Gratuito"),
		Description:   "Programa de pós-graduação stricto sensu do CIn/UFPE com conceito CAPES 7 (nota máxima). Linhas de pesquisa em engenharia de software, IA, sistemas distribuídos, redes e mais. Possibilidade de bolsa CAPES/CNPq. Gratuito por ser universidade federal.",
		Tags:          []string{"Gratuito", "CAPES 7", "Federal", "Bolsa", "Pesquisa"},
	},
	{
		ID:            "ufpe-mestrado-ec",
		Institution:   "UFPE - Centro de Informática (CIn)",
		Program:       "Mestrado Acadêmico em Engenharia da Computação",
		Level:         LevelMestrado,
		Modality:      ModalityPresencial,
		Shift:         ShiftFlexivel,
		Area:          "Engenharia da Computação",
		City:          "Recife",
		State:         "PE",
		Duration:      "24 meses",
		URL:           "https://portal.cin.ufpe.br/pos-graduacao/stricto-sensu/programa-academico/",
		MECRecognized: true,
		MECGrade:      mecGrade(5),
		Price:         price("Gratuito"),
		Description:   "Mestrado acadêmico em Engenharia da Computação no CIn/UFPE. Foco em sistemas embarcados, redes, computação em nuvem e engenharia de software. Conceito CAPES 7. Possibilidade de bolsa. Gratuito.",
		Tags:          []string{"Gratuito", "CAPES 7", "Federal", "Bolsa", "Engenharia"},
	},
	{
		ID:            "ufpe-mestrado-prof",
		Institution:   "UFPE - Centro de Informática (CIn)",
		Program:       "Mestrado Profissional em Ciência da Computação",
		Level:         LevelMestrado,
		Modality:      ModalityPresencial,
		Shift:         ShiftFlexivel,
		Area:          "Ciência da Computação",
		City:          "Recife",
		State:         "PE",
		Duration:      "24 meses",
		URL:           "https://portal.cin.ufpe.br/pos-graduacao/stricto-sensu/programa-profissional/",
		MECRecognized: true,
		MECGrade:      mecGrade(5),
		Price:         price("Gratuito"),
		Description:   "Mestrado profissional stricto sensu do CIn/UFPE voltado a profissionais do mercado. Foco em pesquisa aplicada em engenharia de software, IA e sistemas. Gratuito por ser universidade federal pública.",
		Tags:          []string{"Gratuito", "Federal", "Profissional", "Pesquisa Aplicada"},
	},
	{
		ID:            "ufpe-doutorado",
		Institution:   "UFPE - Centro de Informática (CIn)",
		Program:       "Doutorado em Ciência da Computação",
		Level:         LevelDoutorado,
		Modality:      ModalityPresencial,
		Shift:         ShiftFlexivel,
		Area:          "Ciência da Computação",
		City:          "Recife",
		State:         "PE",
		Duration:      "48 meses",
		URL:           "https://portal.cin.ufpe.br/pos-graduacao/stricto-sensu/programa-academico/",
		MECRecognized: true,
		MECGrade:      mecGrade(5),
		Price:         price("Gratuito"),
		Description:   "Doutorado acadêmico do CIn/UFPE com conceito CAPES 7 (nota máxima no Brasil). Pesquisa de ponta em engenharia de software, inteligência artificial, segurança e mais. Possibilidade de bolsa CAPES/CNPq. Gratuito.",
		Tags:          []string{"Gratuito", "CAPES 7", "Federal", "Bolsa", "Doutorado"},
	},
	{
		ID:            "ufpe-residencia-software",
		Institution:   "UFPE - CIn (parceria Motorola)",
		Program:       "Residência em Software",
		Level:         LevelPosGraduacao,
		Modality:      ModalityPresencial,
		Shift:         ShiftFlexivel,
		Area:          "Engenharia de Software / Testes",
		City:          "Recife",
		State:         "PE",
		Duration:      "12 meses",
		URL:           "https://portal.cin.ufpe.br/pos-graduacao/especializacoes-2/residencia-2/",
		MECRecognized: true,
		MECGrade:      mecGrade(5),
		Price:         price("Gratuito + Bolsa"),
		Description:   "Modelo pioneiro de residência em software criado no CIn/UFPE em parceria com a Motorola. Imersão em ambiente acadêmico e fábrica de software/teste. Foco em planejamento, automação e execução de testes em aplicações mobile. Gratuito com possibilidade de bolsa de pesquisa.",
		Tags:          []string{"Gratuito", "Bolsa", "Residência", "Testes", "Mobile"},
	},
	{
		ID:            "ufpe-residencia-dev",
		Institution:   "UFPE - CIn (parceria Emprel)",
		Program:       "Residência em Desenvolvimento de Software",
		Level:         LevelPosGraduacao,
		Modality:      ModalityPresencial,
		Shift:         ShiftFlexivel,
		Area:          "Desenvolvimento de Software",
		City:          "Recife",
		State:         "PE",
		Duration:      "12 meses",
		URL:           "https://portal.cin.ufpe.br/pos-graduacao/especializacoes-2/residencia-2/",
		MECRecognized: true,
		MECGrade:      mecGrade(5),
		Price:         price("Gratuito + Bolsa"),
		Description:   "Programa de residência em desenvolvimento de software do CIn/UFPE em parceria com a Emprel. Objetivo de formar recursos humanos com alto grau de especialização em desenvolvimento de software. Gratuito com bolsa.",
		Tags:          []string{"Gratuito", "Bolsa", "Residência", "Dev", "Software"},
	},
	{
		ID:            "ufpe-residencia-robotica",
		Institution:   "UFPE - CIn (parceria Softex)",
		Program:       "Residência em Robótica e IA Aplicadas a Testes de Software",
		Level:         LevelPosGraduacao,
		Modality:      ModalityPresencial,
		Shift:         ShiftFlexivel,
		Area:          "IA / Testes de Software",
		City:          "Recife",
		State:         "PE",
		Duration:      "12 meses",
		URL:           "https://residenciarobotica.cin.ufpe.br/",
		MECRecognized: true,
		MECGrade:      mecGrade(5),
		Price:         price("Gratuito + Bolsa"),
		Description:   "Residência do CIn/UFPE em parceria com Softex. Laboratórios equipados com robôs e materiais para prototipação. Foco em testes práticos, IA e desenvolvimento de software com impacto social. Gratuito com bolsa.",
		Tags:          []string{"Gratuito", "Bolsa", "IA", "Robótica", "Testes"},
	},
	{
		ID:            "ufpe-residencia-dados",
		Institution:   "UFPE - CIn (parceria Samsung)",
		Program:       "Residência em Engenharia e Ciência de Dados",
		Level:         LevelPosGraduacao,
		Modality:      ModalityPresencial,
		Shift:         ShiftFlexivel,
		Area:          "Ciência de Dados",
		City:          "Recife",
		State:         "PE",
		Duration:      "12 meses",
		URL:           "https://portal.cin.ufpe.br/pos-graduacao/especializacoes-2/residencia-2/",
		MECRecognized: true,
		MECGrade:      mecGrade(5),
		Price:         price("Gratuito + Bolsa"),
		Description:   "Residência do CIn/UFPE em parceria com a Samsung (19 anos de parceria). Vivência em ambiente empresarial com base teórica de excelência em engenharia e ciência de dados. Gratuito com bolsa.",
		Tags:          []string{"Gratuito", "Bolsa", "Dados", "Samsung", "Residência"},
	},
	{
		ID:            "ufpe-residencia-visao",
		Institution:   "UFPE - CIn (parceria Samsung)",
		Program:       "Residência em Visão Computacional",
		Level:         LevelPosGraduacao,
		Modality:      ModalityPresencial,
		Shift:         ShiftFlexivel,
		Area:          "Visão Computacional / IA",
		City:          "Recife",
		State:         "PE",
		Duration:      "12 meses",
		URL:           "https://portal.cin.ufpe.br/pos-graduacao/especializacoes-2/residencia-2/",
		MECRecognized: true,
		MECGrade:      mecGrade(5),
		Price:         price("Gratuito + Bolsa"),
		Description:   "Residência do CIn/UFPE em parceria com a Samsung. Capacitação em conceitos alinhados às demandas atuais do mercado de tecnologia. Foco em visão computacional e processamento de imagens. Gratuito com bolsa.",
		Tags:          []string{"Gratuito", "Bolsa", "Visão Computacional", "IA", "Samsung"},
	},
	{
		ID:            "ufpe-residencia-auto-dev",
		Institution:   "UFPE - CIn (parceria Stellantis)",
		Program:       "Residência em Desenvolvimento de Software para Setor Automotivo",
		Level:         LevelPosGraduacao,
		Modality:      ModalityPresencial,
		Shift:         ShiftFlexivel,
		Area:          "Engenharia de Software Automotivo",
		City:          "Recife",
		State:         "PE",
		Duration:      "12 meses",
		URL:           "https://portal.cin.ufpe.br/pos-graduacao/especializacoes-2/residencia-2/",
		MECRecognized: true,
		MECGrade:      mecGrade(5),
		Price:         price("Gratuito + Bolsa"),
		Description:   "Residência do CIn/UFPE em parceria com a Stellantis. Formação para aprimorar habilidades em desenvolvimento de software com aprendizado direcionado por profissionais experientes. Gratuito com bolsa de pesquisa.",
		Tags:          []string{"Gratuito", "Bolsa", "Automotivo", "Stellantis", "Dev"},
	},
	{
		ID:            "ufrpe-mestrado",
		Institution:   "UFRPE - Universidade Federal Rural de Pernambuco",
		Program:       "Mestrado em Informática Aplicada",
		Level:         LevelMestrado,
		Modality:      ModalityPresencial,
		Shift:         ShiftFlexivel,
		Area:          "Informática Aplicada",
		City:          "Recife",
		State:         "PE",
		Duration:      "24 meses",
		URL:           "http://www.ppgia.ufrpe.br/",
		MECRecognized: true,
		MECGrade:      mecGrade(4),
		Price:         price("Gratuito"),
		Description:   "Mestrado acadêmico em Informática Aplicada na UFRPE. Linhas de pesquisa em engenharia de software, inteligência computacional e sistemas de informação. Possibilidade de bolsa CAPES/CNPq. Gratuito por ser universidade federal.",
		Tags:          []string{"Gratuito", "Federal", "Bolsa", "Pesquisa", "CAPES"},
	},
	{
		ID:            "upe-mestrado",
		Institution:   "Universidade de Pernambuco (UPE)",
		Program:       "Mestrado em Engenharia da Computação",
		Level:         LevelMestrado,
		Modality:      ModalityPresencial,
		Shift:         ShiftFlexivel,
		Area:          "Engenharia da Computação",
		City:          "Recife",
		State:         "PE",
		Duration:      "24 meses",
		URL:           "http://www.ppgec.ecomp.poli.br/",
		MECRecognized: true,
		MECGrade:      mecGrade(4),
		Price:         price("Gratuito"),
		Description:   "Mestrado acadêmico em Engenharia da Computação na UPE/Poli. Linhas de pesquisa em engenharia de software, computação inteligente e sistemas distribuídos. Possibilidade de bolsa. Gratuito por ser universidade estadual pública.",
		Tags:          []string{"Gratuito", "Estadual", "Bolsa", "Pesquisa", "CAPES"},
	},
	{
		ID:            "ifpe-pos-ti",
		Institution:   "IFPE - Instituto Federal de Pernambuco",
		Program:       "Especialização em Tecnologia da Informação",
		Level:         LevelPosGraduacao,
		Modality:      ModalityPresencial,
		Shift:         ShiftNoturno,
		Area:          "Tecnologia da Informação",
		City:          "Recife",
		State:         "PE",
		Duration:      "18 meses",
		URL:           "https://portal.ifpe.edu.br/o-ifpe/pesquisa-pos-graduacao-e-inovacao/pos-graduacao/",
		MECRecognized: true,
		MECGrade:      mecGrade(4),
		Price:         price("Gratuito"),
		Description:   "Pós-graduação lato sensu gratuita no IFPE campus Recife. Formação especializada em TI com foco em demandas do mercado local e regional. Gratuito por ser instituto federal público.",
		Tags:          []string{"Gratuito", "Federal", "Instituto Federal", "TI"},
	},
}
