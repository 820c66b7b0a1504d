package rules

import (
	"regexp"

	"github.com/jonathan/bloom-classifier/internal/types"
)

// Indonesian is the compiled rule profile for Indonesian exam questions.
// Categories are evaluated C1 up to C6, and forcing any of C3..C6 requires an
// imperative verb addressed to the respondent. This distinguishes "analisislah
// struktur berikut" from "apa yang dimaksud dengan analisis".
var Indonesian = newIndonesianProfile()

func newIndonesianProfile() *Profile {
	return &Profile{
		Locale: "id",

		absoluteBlockers: []blockerRule{
			{regexp.MustCompile(`(?i)\bkecuali\b`), 0.97},
			{regexp.MustCompile(`(?i)\bdisebut\b`), 0.96},
			{regexp.MustCompile(`(?i)\b(?:adalah|merupakan|yaitu)\s*[.…]*\s*$`), 0.96},
			{regexp.MustCompile(`(?i)_{3,}`), 0.96},
			{regexp.MustCompile(`(?i)\.{4,}`), 0.96},
			{regexp.MustCompile(`(?i)^apa\s+yang\s+dimaksud\b`), 0.96},
		},

		technicalBlockers: compileAll([]string{
			`\b(?:audit|enkripsi|firewall|injeksi\s+sql|topologi|protokol|jaringan\s+komputer)\b[^?]*\b(?:adalah|merupakan)\b`,
			`\bapa\s+itu\s+(?:audit|enkripsi|firewall|topologi|protokol|server)\b`,
		}),
		understandCues: compileAll([]string{
			`\bmengapa\b`,
			`\bbagaimana\s+cara\s+kerja\b`,
			`\bapa\s+penyebab\b`,
		}),

		falseCreate: compileAll([]string{
			`\b(?:dirancang|dibuat|dikembangkan|dibangun|diciptakan)\b`,
		}),
		falseEvaluate: compileAll([]string{
			`\bkriteria\s+apa\b`,
			`\batas\s+dasar\s+apa\b`,
			`\bapa\s+(?:dasar|kriteria)\b`,
		}),

		categories: []categoryRules{
			{
				category: types.C1,
				force: compileAll([]string{
					`^sebutkan`,
					`^tuliskan`,
					`^apa\s+(?:yang\s+dimaksud|itu|pengertian)`,
					`definisi.+adalah`,
					`pengertian.+adalah`,
					`^identifikasi`,
					`salah\s+satu\s+(?:komponen|faktor|kategori)`,
					`yang\s+dimaksud\s+dengan.+adalah`,
				}),
				keywords: []string{
					"sebutkan", "tuliskan", "identifikasi", "definisi", "pengertian",
					"apa itu", "apa yang dimaksud", "jelaskan pengertian",
					"nama", "jenis-jenis", "macam-macam", "contoh",
					"siapa", "kapan", "dimana", "berapa",
					"salah satu", "komponen", "unsur", "bagian dari",
					"istilah", "maksud dari", "arti dari",
				},
			},
			{
				category: types.C2,
				force: compileAll([]string{
					`^jelaskan\b`,
					`^uraikan`,
					`^deskripsikan`,
					`^bedakan`,
					`perbedaan\s+antara`,
					`apa\s+fungsi`,
					`mengapa`,
					`bagaimana`,
					`hubungan\s+antara`,
				}),
				// "Jelaskan cara" and procedural "bagaimana" belong to C3.
				anti: compileAll([]string{
					`jelaskan\s+cara`,
					`bagaimana\s+(?:cara|membuat|merancang)`,
				}),
				keywords: []string{
					"jelaskan", "uraikan", "deskripsikan", "gambarkan",
					"bedakan", "perbedaan", "persamaan", "hubungan",
					"mengapa", "bagaimana", "klasifikasi",
					"interpretasi", "maksud", "tujuan dari",
					"fungsi", "kegunaan", "manfaat",
					"kesimpulan dari", "ringkasan",
				},
			},
			{
				category: types.C3,
				force: compileAll([]string{
					`^gunakan`,
					`^terapkan`,
					`^implementasikan`,
					`^aplikasikan`,
					`^hitunglah`,
					`^selesaikan`,
					`jelaskan\s+cara`,
					`bagaimana\s+cara`,
					`langkah-langkah`,
					`tahap.+dalam`,
				}),
				keywords: []string{
					"gunakan", "terapkan", "implementasikan", "praktikkan",
					"demonstrasikan", "hitunglah", "buatlah perhitungan",
					"aplikasikan", "selesaikan", "operasikan",
					"jelaskan cara", "bagaimana cara", "lakukan",
					"eksekusi", "jalankan", "konfigurasi",
					"tahap", "langkah-langkah", "prosedur",
				},
			},
			{
				category: types.C4,
				force: compileAll([]string{
					`^analisis`,
					`^analisislah`,
					`^bandingkan`,
					`faktor.+mempengaruhi`,
					`penyebab.+tidak`,
					`mengapa.+(?:terjadi|tidak|gagal)`,
					`identifikasi\s+penyebab`,
					`hubungan\s+sebab`,
				}),
				keywords: []string{
					"analisis", "analisislah", "bandingkan", "kontras",
					"bedakan", "kategorikan", "klasifikasikan",
					"organisasi", "susun", "strukturkan",
					"pisahkan", "uraikan komponen", "identifikasi penyebab",
					"hubungan sebab akibat", "faktor yang mempengaruhi",
					"mengapa terjadi", "penyebab", "akibat dari",
				},
			},
			{
				category: types.C5,
				force: compileAll([]string{
					`^evaluasi`,
					`^nilai`,
					`keunggulan\s+dan\s+kelemahan`,
					`apakah\s+(?:efektif|tepat|sesuai|valid)`,
					`setuju\s+atau\s+tidak`,
					`pro\s+dan\s+kontra`,
					`berikan\s+penilaian`,
					`efektivitas.+(?:dibandingkan|versus)`,
				}),
				keywords: []string{
					"evaluasi", "nilai", "kritik", "berikan penilaian",
					"apakah efektif", "apakah tepat", "keunggulan dan kelemahan",
					"pro dan kontra", "setuju atau tidak", "justifikasi",
					"rekomendasikan", "putuskan", "pilih yang terbaik",
					"beri pendapat", "kriteria", "prioritaskan",
					"efektivitas", "efisiensi", "validitas",
				},
			},
			{
				category: types.C6,
				force: compileAll([]string{
					`^rancang`,
					`^buatlah\s+(?:rancangan|desain|sistem|model|algoritma|strategi)`,
					`^desain`,
					`^kembangkan`,
					`^susunlah\s+(?:strategi|rencana|sistem)`,
					`^ciptakan`,
					`rancang\s+(?:sistem|algoritma|database|arsitektur)`,
					`buat\s+rancangan`,
					`kembangkan\s+(?:aplikasi|sistem|model)`,
				}),
				keywords: []string{
					"rancang", "rancanglah", "buatlah", "ciptakan",
					"kembangkan", "desain", "susunlah", "konstruksi",
					"formulasikan", "rencanakan", "kreasikan",
					"hasilkan", "produksi", "bangun", "integrasikan",
					"rancang sistem", "buat rancangan", "desain arsitektur",
					"kembangkan model", "susun strategi",
				},
			},
		},

		imperativeGate: true,
		imperativeRe: regexp.MustCompile(`(?i)\b(?:jelaskan|uraikan|deskripsikan|gambarkan|bedakan|sebutkan|tuliskan|identifikasi|gunakan|terapkan|implementasikan|aplikasikan|praktikkan|demonstrasikan|hitunglah|hitung|selesaikan|operasikan|lakukan|jalankan|analisis|analisislah|bandingkan|kategorikan|klasifikasikan|evaluasi|nilailah|kritiklah|rekomendasikan|putuskan|prioritaskan|rancang|rancanglah|buatlah|ciptakan|kembangkan|desain|susunlah|formulasikan|rencanakan|bangun|integrasikan|hasilkan)\b`),
		creativeRe:   regexp.MustCompile(`(?i)\b(?:rancang|rancanglah|buatlah|ciptakan|kembangkan|desain|susunlah|konstruksi|formulasikan|rencanakan|kreasikan|hasilkan|produksi|bangun|integrasikan)\b`),

		declarative: compileAll([]string{
			`\b(?:adalah|yaitu|yakni|merupakan)\b[^?]*$`,
		}),

		tuning: DefaultTuning(),
	}
}
