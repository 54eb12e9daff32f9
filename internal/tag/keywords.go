package tag

// DefaultWholeWords is the built-in matching mode. Substring matching
// casts the wider net; word-boundary matching is opt-in.
const DefaultWholeWords = false

// DefaultKeywords is the built-in gene-editing and genomics vocabulary
// used when no keyword file is supplied. Duplicate entries are harmless;
// matching reports each distinct keyword once.
var DefaultKeywords = []string{
	"gene editing",
	"CRISPR",
	"prime editing",
	"base editing",
	"gene therapy",
	"DNA",
	"genes",
	"nucleotides",
	"CRISPR",
	"TALENs",
	"vectors",
	"transduction",
	"gene addition",
	"somatic",
	"germline",
	"in-vivo",
	"ex-vivo",
	"mutation",
	"therapeutic protein",
	"gene silencing",
	"transgene",
	"ZFNs",
	"TALENs",
	"insertion",
	"deletion",
	"gene regulatory network",
	"transcriptomics",
	"epigenetics",
	"epigenomics",
	"chromatin",
	"methylation",
	"histone modification",
	"non-coding RNA",
	"long non-coding RNA",
	"lncRNA",
	"microRNA",
	"miRNA",
	"CRISPR interference",
	"CRISPR activation",
	"3D genome organization",
	"ATAC-seq",
	"ChIP-seq",
	"Hi-C",
	"single-cell sequencing",
	"multi-omics",
	"spatial transcriptomics",
	"single-cell RNA sequencing",
	"gene regulatory network",
	"splicing",
	"proteomics",
}
